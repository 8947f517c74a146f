// Package tui provides the interactive Bubble Tea entry form for pbudget.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/model"
	"github.com/theirongolddev/pbudget/internal/tui/components"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	dataFile   string
	rows       dataset.Dataset
	categories []string
	loaded     bool

	// Form state
	vals   *formValues
	form   *huh.Form
	saving bool

	// Status label under the form
	status     components.StatusKind
	statusText string

	recent      table.Model
	recentLimit int

	spinner spinner.Model

	width  int
	height int
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140

	formCardWidth = 56
)

// NewApp creates the form model for the CSV file at dataFile. recentLimit
// caps the rows shown in the recent entries table.
func NewApp(dataFile string, recentLimit int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dataFile:    dataFile,
		recentLimit: recentLimit,
		recent:      newRecentTable(),
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dataFile),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formInnerWidth())
		}
		a.recent.SetWidth(a.recentInnerWidth())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		}
		if !a.loaded || a.saving {
			return a, nil
		}

	case DataLoadedMsg:
		a.loaded = true
		if msg.Err != nil {
			a.setStatus(components.StatusError, fmt.Sprintf("Could not load %s: %v", a.dataFile, msg.Err))
		} else {
			a.setRows(msg.Rows)
			a.setStatus(components.StatusInfo, fmt.Sprintf("Loaded %s, %s",
				cli.Plural(len(a.rows.Entries()), "entry", "entries"),
				cli.Plural(len(a.categories), "category", "categories")))
		}
		return a.resetForm(defaultValues())

	case EntrySavedMsg:
		a.saving = false
		if msg.Err != nil {
			a.setStatus(components.StatusError, fmt.Sprintf("Save failed: %v", msg.Err))
			a.vals.Save = true
			return a.resetForm(a.vals)
		}
		a.setRows(msg.Rows)
		a.setStatus(components.StatusOK, "Saved "+strings.Join(msg.Entry.Row(), "  "))
		return a.resetForm(defaultValues())

	case spinner.TickMsg:
		if !a.loaded || a.saving {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.form != nil && !a.saving {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submit()
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// submit turns the completed form into an Entry and starts the save. A
// validation failure is shown in the status label and nothing is written.
func (a App) submit() (App, tea.Cmd) {
	if !a.vals.Save {
		a.setStatus(components.StatusInfo, "Cleared")
		return a.resetForm(defaultValues())
	}

	entry, err := model.ParseEntry(a.vals.input())
	if err != nil {
		a.setStatus(components.StatusError, err.Error())
		a.vals.Save = true
		return a.resetForm(a.vals)
	}

	a.saving = true
	a.setStatus(components.StatusInfo, "Saving...")
	return a, tea.Batch(saveEntryCmd(a.dataFile, entry), a.spinner.Tick)
}

// resetForm builds a new form over v. huh forms cannot be rewound once
// completed, so every submit gets a fresh one.
func (a App) resetForm(v *formValues) (App, tea.Cmd) {
	a.vals = v
	a.form = newEntryForm(v, a.categories)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formInnerWidth())
	}
	return a, a.form.Init()
}

func (a *App) setRows(rows dataset.Dataset) {
	a.rows = rows
	a.categories = dataset.Categories(rows)
	a.recent.SetRows(recentRows(rows, a.recentLimit))
}

func (a *App) setStatus(kind components.StatusKind, text string) {
	a.status = kind
	a.statusText = text
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) formCardOuterWidth() int {
	if a.isCompactLayout() {
		return a.contentWidth()
	}
	return formCardWidth
}

func (a App) formInnerWidth() int {
	return components.CardInnerWidth(a.formCardOuterWidth())
}

func (a App) recentCardOuterWidth() int {
	if a.isCompactLayout() {
		return a.contentWidth()
	}
	return a.contentWidth() - formCardWidth
}

func (a App) recentInnerWidth() int {
	return components.CardInnerWidth(a.recentCardOuterWidth())
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  pbudget needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	return "\n  " + a.spinner.View() + muted.Render(" Loading "+a.dataFile) + "\n"
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render(" ◈ pbudget"))
	b.WriteString(subtitleStyle.Render(" · Simplistic Personal Budget"))
	b.WriteString("\n")

	b.WriteString(components.StatRow([]components.Stat{
		{Label: "Entries", Value: cli.FormatNumber(int64(len(a.rows.Entries())))},
		{Label: "Categories", Value: cli.FormatNumber(int64(len(a.categories)))},
	}, cw))
	b.WriteString("\n")

	formBody := ""
	if a.form != nil {
		formBody = a.form.View()
	}
	status := components.RenderStatus(a.status, a.statusText)
	if a.saving {
		status = a.spinner.View() + " " + status
	}
	formBody += "\n" + status

	formCard := components.FocusedCard("New entry", formBody, a.formCardOuterWidth())
	recentTitle := "Recent entries"
	if a.recentLimit > 0 {
		recentTitle = fmt.Sprintf("Recent entries (last %d)", a.recentLimit)
	}
	recentCard := components.ContentCard(
		recentTitle,
		a.recentView(),
		a.recentCardOuterWidth(),
	)

	if a.isCompactLayout() {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, formCard, recentCard))
	} else {
		b.WriteString(components.CardRow([]string{formCard, recentCard}))
	}
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(cw, "[enter] next  [shift+tab] back  [esc] quit", a.dataFile))
	return b.String()
}

func (a App) recentView() string {
	if len(a.rows.Entries()) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("Nothing recorded yet.")
	}
	return a.recent.View()
}
