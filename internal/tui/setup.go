package tui

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/theirongolddev/pbudget/internal/config"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// ErrSetupAborted is returned when the user quits the setup wizard.
var ErrSetupAborted = errors.New("setup aborted")

// setupValues backs the setup wizard fields.
type setupValues struct {
	DataFile    string
	RecentLimit string
	Theme       string
}

var recentOptions = []int{5, 8, 15, 0}

// recentChoices returns recentOptions plus current when the config holds a
// value the preset list lacks, so the Select can show it selected.
func recentChoices(current string) []int {
	n, err := strconv.Atoi(current)
	if err != nil || n < 0 || slices.Contains(recentOptions, n) {
		return recentOptions
	}
	return append([]int{n}, recentOptions...)
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		DataFile:    cfg.General.DataFile,
		RecentLimit: strconv.Itoa(cfg.General.RecentLimit),
		Theme:       cfg.Appearance.Theme,
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	choices := recentChoices(v.RecentLimit)
	recentOpts := make([]huh.Option[string], 0, len(choices))
	for _, n := range choices {
		label := strconv.Itoa(n) + " rows"
		if n == 0 {
			label = "all rows"
		}
		recentOpts = append(recentOpts, huh.NewOption(label, strconv.Itoa(n)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pbudget!").
				Description("Let's set up a few things.\nPress Enter to continue."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data file").
				Description("CSV file that holds your entries. Created on first use.").
				Placeholder("budget.csv").
				Value(&v.DataFile),
			huh.NewSelect[string]().
				Title("Recent entries shown under the form").
				Options(recentOpts...).
				Value(&v.RecentLimit),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithTheme(theme.Active.Huh())
}

// apply copies the wizard answers onto cfg.
func (v *setupValues) apply(cfg config.Config) config.Config {
	if p := strings.TrimSpace(v.DataFile); p != "" {
		cfg.General.DataFile = p
	}
	if n, err := strconv.Atoi(v.RecentLimit); err == nil && n >= 0 {
		cfg.General.RecentLimit = n
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg
}

// RunSetup runs the setup wizard on the terminal and returns cfg updated
// with the answers. It does not save anything.
func RunSetup(cfg config.Config) (config.Config, error) {
	v := newSetupValues(cfg)
	if err := newSetupForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cfg, ErrSetupAborted
		}
		return cfg, err
	}

	cfg = v.apply(cfg)
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}
