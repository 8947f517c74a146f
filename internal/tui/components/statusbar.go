package components

import (
	"strings"

	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the color of a status line.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusOK
	StatusError
)

// RenderStatus renders the one-line status label under the form.
func RenderStatus(kind StatusKind, text string) string {
	t := theme.Active

	style := lipgloss.NewStyle()
	switch kind {
	case StatusOK:
		style = style.Foreground(t.Green)
	case StatusError:
		style = style.Foreground(t.Red).Bold(true)
	case StatusInfo:
		style = style.Foreground(t.TextMuted)
	default:
		return ""
	}
	return style.Render(text)
}

// RenderStatusBar renders the bottom bar: key hints on the left, data file
// on the right.
func RenderStatusBar(width int, hints, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Not enough room for both; the hints win.
		return style.Render(left)
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
