package tui

import (
	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func newRecentTable() table.Model {
	t := theme.Active

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Amount", Width: 10},
			{Title: "Category", Width: 20},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	// Nothing is selectable; keep the cursor row looking like the others.
	s.Selected = s.Cell
	tbl.SetStyles(s)

	return tbl
}

// recentRows returns the last limit entries of d, newest first, with the
// columns located by header name.
func recentRows(d dataset.Dataset, limit int) []table.Row {
	entries := d.Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	idx := []int{
		d.ColumnIndex("timestamp"),
		d.ColumnIndex("amount"),
		d.ColumnIndex(dataset.CategoryColumn),
	}

	rows := make([]table.Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		row := entries[i]
		out := make(table.Row, len(idx))
		for j, col := range idx {
			if col >= 0 && col < len(row) {
				out[j] = row[col]
			}
		}
		rows = append(rows, out)
	}
	return rows
}
