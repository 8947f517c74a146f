// Package cmd implements the pbudget CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/config"
	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFile  string
	flagQuiet bool
	flagDebug bool
)

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "pbudget",
	Short:             "Simplistic personal budget",
	Long:              "Record budget entries (date, amount, category) into a CSV file.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runForm,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Budget CSV file (default from config, then budget.csv)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// prepare loads .env and the config file and configures the default logger.
func prepare(_ *cobra.Command, _ []string) error {
	log.SetOutput(os.Stderr)
	log.SetPrefix("pbudget")
	log.SetReportTimestamp(false)

	if err := config.LoadEnv(); err != nil {
		log.Warn("ignoring .env", "err", err)
	}

	loaded, err := config.Load()
	if err != nil {
		log.Warn("using default config", "path", config.Path(), "err", err)
	}
	cfg = loaded

	theme.SetActive(cfg.Appearance.Theme)
	log.SetLevel(logLevel(cfg.Log.Level))
	return nil
}

func logLevel(configured string) log.Level {
	switch {
	case flagDebug:
		return log.DebugLevel
	case flagQuiet:
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(configured))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// dataFile resolves the CSV path: --file, then env/config, then the default.
func dataFile() string {
	if flagFile != "" {
		return flagFile
	}
	return config.GetDataFile(cfg)
}

// loadData is the shared data loading path used by all commands.
func loadData() (dataset.Dataset, error) {
	rows, err := dataset.Load(dataFile())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dataFile(), err)
	}
	return rows, nil
}

// logToFile sends log output to the log file while the form owns the
// terminal. The returned func restores stderr.
func logToFile() func() {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path is derived from XDG dirs
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return func() {
		log.SetOutput(os.Stderr)
		log.SetReportTimestamp(false)
		_ = f.Close()
	}
}

func displayPath(path string) string {
	home, _ := os.UserHomeDir()
	return cli.MaskPath(path, home)
}
