package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/pbudget/internal/config"
	"github.com/theirongolddev/pbudget/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	updated, err := tui.RunSetup(cfg)
	if errors.Is(err, tui.ErrSetupAborted) {
		fmt.Println("\n  Setup cancelled, nothing saved.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Save(updated); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cfg = updated

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `pbudget setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
