package tui

import (
	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// DataLoadedMsg is sent when the data file has been read.
type DataLoadedMsg struct {
	Rows dataset.Dataset
	Err  error
}

// EntrySavedMsg is sent when a submitted entry has been written.
type EntrySavedMsg struct {
	Entry model.Entry
	Rows  dataset.Dataset
	Err   error
}

func loadDataCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rows, err := dataset.Load(path)
		return DataLoadedMsg{Rows: rows, Err: err}
	}
}

// saveEntryCmd reloads the file, appends the entry and rewrites it.
func saveEntryCmd(path string, e model.Entry) tea.Cmd {
	return func() tea.Msg {
		rows, err := dataset.Append(path, e.Row())
		return EntrySavedMsg{Entry: e, Rows: rows, Err: err}
	}
}
