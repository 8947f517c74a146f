package cmd

import (
	"fmt"

	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the entry form (default command)",
	RunE:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(_ *cobra.Command, _ []string) error {
	path := dataFile()

	fmt.Println("Welcome to simplistic personal budget")

	// Load once up front so a broken file fails before the screen switches.
	rows, err := loadData()
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("There are %d categories in the dataset", len(dataset.Categories(rows))))

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	restore := logToFile()
	defer restore()

	app := tui.NewApp(path, cfg.General.RecentLimit)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
