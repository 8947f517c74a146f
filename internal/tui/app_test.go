package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/model"
	"github.com/theirongolddev/pbudget/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func seededApp(t *testing.T, rows dataset.Dataset) (App, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.csv")
	if rows != nil {
		if err := dataset.Save(path, rows); err != nil {
			t.Fatal(err)
		}
	}

	a := NewApp(path, 5)
	msg := loadDataCmd(path)()
	m, _ := a.Update(msg)
	return m.(App), path
}

func TestLoad_SeedsCategories(t *testing.T) {
	a, _ := seededApp(t, dataset.Dataset{
		dataset.Header,
		{"2024-01-01", "1.00", "Rent"},
		{"2024-01-02", "2.00", "Fuel"},
		{"2024-01-03", "3.00", "Rent"},
	})

	if !a.loaded {
		t.Fatal("app not marked loaded")
	}
	if diff := cmp.Diff([]string{"Fuel", "Rent"}, a.categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if a.form == nil {
		t.Fatal("form not built after load")
	}
	if a.vals.Date != model.Today() {
		t.Errorf("date default = %q, want today %q", a.vals.Date, model.Today())
	}
}

func TestLoad_MissingFileBootstraps(t *testing.T) {
	a, path := seededApp(t, nil)

	if a.status == components.StatusError {
		t.Fatalf("unexpected load error: %s", a.statusText)
	}
	if len(a.categories) != 0 {
		t.Errorf("categories = %v, want none", a.categories)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("data file not created: %v", err)
	}
}

func TestSubmit_ValidationErrorWritesNothing(t *testing.T) {
	a, path := seededApp(t, dataset.Dataset{dataset.Header})
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		vals formValues
		want string
	}{
		{"bad date", formValues{Date: "yesterday", Amount: "1", Category: "Food", Save: true}, "invalid date"},
		{"bad amount", formValues{Date: "2024-01-01", Amount: "lots", Category: "Food", Save: true}, "invalid amount"},
		{"empty category", formValues{Date: "2024-01-01", Amount: "1", Category: "  ", Save: true}, "category must be filled in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.vals
			a.vals = &v

			got, cmd := a.submit()
			if got.status != components.StatusError {
				t.Fatalf("status = %v, want error", got.status)
			}
			if !strings.Contains(got.statusText, tt.want) {
				t.Errorf("status text = %q, want it to contain %q", got.statusText, tt.want)
			}
			if got.saving {
				t.Error("app entered saving state on invalid input")
			}
			if cmd == nil {
				t.Error("expected a form init command")
			}
			if got.vals.Amount != tt.vals.Amount {
				t.Errorf("typed amount lost: %q", got.vals.Amount)
			}
		})
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("data file changed on invalid input:\n%q\n%q", before, after)
	}
}

func TestSubmit_ClearDoesNotSave(t *testing.T) {
	a, _ := seededApp(t, dataset.Dataset{dataset.Header})
	a.vals = &formValues{Date: "2024-01-01", Amount: "5", Category: "Food", Save: false}

	got, _ := a.submit()
	if got.saving {
		t.Fatal("clear started a save")
	}
	if got.vals.Amount != "" || got.vals.Category != "" {
		t.Fatalf("fields not reset: %+v", *got.vals)
	}
}

func TestSubmit_ValidEntrySaves(t *testing.T) {
	a, path := seededApp(t, dataset.Dataset{dataset.Header, {"2024-01-01", "1.00", "Rent"}})
	a.vals = &formValues{Date: "2024-03-05", Amount: "12,5", Category: " Books ", Save: true}

	got, cmd := a.submit()
	if !got.saving {
		t.Fatal("valid entry did not start a save")
	}
	if cmd == nil {
		t.Fatal("expected save command")
	}

	// Run the save directly rather than through the batch.
	e, err := model.ParseEntry(got.vals.input())
	if err != nil {
		t.Fatal(err)
	}
	msg, ok := saveEntryCmd(path, e)().(EntrySavedMsg)
	if !ok {
		t.Fatal("saveEntryCmd did not return EntrySavedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("save failed: %v", msg.Err)
	}

	m, _ := got.Update(msg)
	after := m.(App)

	if after.saving {
		t.Error("still saving after EntrySavedMsg")
	}
	if after.status != components.StatusOK {
		t.Errorf("status = %v (%q), want OK", after.status, after.statusText)
	}
	if after.vals.Amount != "" || after.vals.Category != "" || after.vals.Date != model.Today() {
		t.Errorf("form not reset to defaults: %+v", *after.vals)
	}
	if diff := cmp.Diff([]string{"Books", "Rent"}, after.categories); diff != "" {
		t.Errorf("categories not refreshed (-want +got):\n%s", diff)
	}

	rows, err := dataset.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := dataset.Dataset{
		dataset.Header,
		{"2024-01-01", "1.00", "Rent"},
		{"2024-03-05", "12.50", "Books"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("file rows mismatch (-want +got):\n%s", diff)
	}
}

func TestEntrySaved_ErrorKeepsValues(t *testing.T) {
	a, _ := seededApp(t, dataset.Dataset{dataset.Header})
	a.vals = &formValues{Date: "2024-01-01", Amount: "3", Category: "Tea", Save: true}
	a.saving = true

	m, _ := a.Update(EntrySavedMsg{Err: os.ErrPermission})
	got := m.(App)

	if got.status != components.StatusError {
		t.Fatalf("status = %v, want error", got.status)
	}
	if got.vals.Category != "Tea" {
		t.Errorf("values lost after failed save: %+v", *got.vals)
	}
}

func TestKeysIgnoredWhileSaving(t *testing.T) {
	a, _ := seededApp(t, dataset.Dataset{dataset.Header})
	a.saving = true

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("key produced a command while saving")
	}
	if m.(App).vals.Date != a.vals.Date {
		t.Error("form changed while saving")
	}
}

func TestRecentRows(t *testing.T) {
	d := dataset.Dataset{
		{"Category", "timestamp", "amount"},
		{"A", "d1", "1"},
		{"B", "d2", "2"},
		{"C", "d3"},
	}

	rows := recentRows(d, 2)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if diff := cmp.Diff([]string{"d3", "", "C"}, []string(rows[0])); diff != "" {
		t.Errorf("newest row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"d2", "2", "B"}, []string(rows[1])); diff != "" {
		t.Errorf("second row mismatch (-want +got):\n%s", diff)
	}

	if all := recentRows(d, 0); len(all) != 3 {
		t.Errorf("limit 0 returned %d rows, want 3", len(all))
	}
}

func TestView(t *testing.T) {
	a, _ := seededApp(t, dataset.Dataset{dataset.Header, {"2024-01-01", "1.00", "Rent"}})

	if a.View() != "" {
		t.Error("view before first WindowSizeMsg should be empty")
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.(App).View()
	for _, want := range []string{"pbudget", "New entry", "Recent entries", "Rent"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = a.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	if !strings.Contains(m.(App).View(), "too narrow") {
		t.Error("narrow terminal message not shown")
	}
}
