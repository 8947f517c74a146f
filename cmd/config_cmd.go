package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/config"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Print(configReport())
	return nil
}

// configReport renders the effective configuration, section by section.
func configReport() string {
	var b strings.Builder

	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}
	b.WriteString(cli.RenderKV([][2]string{
		{"Config file", config.Path()},
		{"Status", status},
	}))
	b.WriteString("\n")

	general := [][2]string{{"Data file", cfg.General.DataFile}}
	if env := os.Getenv(config.DataFileEnv); env != "" {
		general = append(general, [2]string{"Env override", config.DataFileEnv + "=" + env})
	}
	if flagFile != "" {
		general = append(general, [2]string{"Flag override", "--file " + flagFile})
	}
	general = append(general, [2]string{"Effective", dataFile()})
	recent := "all"
	if cfg.General.RecentLimit > 0 {
		recent = strconv.Itoa(cfg.General.RecentLimit)
	}
	general = append(general, [2]string{"Recent rows", recent})

	b.WriteString("  [General]\n")
	b.WriteString(cli.RenderKV(general))
	b.WriteString("\n")

	b.WriteString("  [Appearance]\n")
	b.WriteString(cli.RenderKV([][2]string{
		{"Theme", cfg.Appearance.Theme},
		{"Available", strings.Join(theme.Names(), ", ")},
	}))
	b.WriteString("\n")

	b.WriteString("  [Log]\n")
	b.WriteString(cli.RenderKV([][2]string{
		{"Level", cfg.Log.Level},
		{"TUI file", config.LogPath()},
	}))
	b.WriteString("\n")

	b.WriteString("  Run `pbudget setup` to reconfigure.\n")
	return b.String()
}
