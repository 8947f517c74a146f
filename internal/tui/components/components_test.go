package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(10, 3)
	if len(widths) != 3 || widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsToTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	tallLines := lipgloss.Height(tallCard)
	if lipgloss.Height(shortCard) >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := lipgloss.Height(joined); got != tallLines {
		t.Fatalf("joined height = %d, want %d", got, tallLines)
	}

	lines := strings.Split(joined, "\n")
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestStatRowWidth(t *testing.T) {
	row := StatRow([]Stat{
		{Label: "Entries", Value: "12"},
		{Label: "Categories", Value: "4", Hint: "distinct"},
	}, 60)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
	if StatRow(nil, 60) != "" {
		t.Error("StatRow(nil) should render nothing")
	}
}

func TestRenderStatus(t *testing.T) {
	if got := RenderStatus(StatusNone, "ignored"); got != "" {
		t.Errorf("StatusNone rendered %q", got)
	}
	got := RenderStatus(StatusError, "category must be filled in")
	if !strings.Contains(got, "category must be filled in") {
		t.Errorf("status text missing: %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("error status has no styling: %q", got)
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(50, "[enter] next  [esc] quit", "budget.csv")
	if w := lipgloss.Width(bar); w != 50 {
		t.Errorf("bar width = %d, want 50", w)
	}
	if !strings.HasSuffix(strings.TrimRight(stripANSI(bar), " "), "budget.csv") {
		t.Errorf("right text not at the end: %q", stripANSI(bar))
	}

	narrow := RenderStatusBar(10, "[enter] next  [esc] quit", "budget.csv")
	if strings.Contains(stripANSI(narrow), "budget.csv") {
		t.Errorf("right text should be dropped when there is no room: %q", stripANSI(narrow))
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
