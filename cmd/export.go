package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/export"
	"github.com/theirongolddev/pbudget/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the data file to SQLite or XLSX",
	Example: `  pbudget export --format xlsx
  pbudget export --format sqlite --out budget.db`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "xlsx", "Export format: xlsx or sqlite")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output path (default: data file with new extension)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	format := strings.ToLower(flagExportFormat)
	ext, err := exportExt(format)
	if err != nil {
		return err
	}

	rows, err := loadData()
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = exportPath(dataFile(), ext)
	}

	var n int
	switch format {
	case "xlsx":
		if err := export.WriteXLSX(out, rows); err != nil {
			return fmt.Errorf("writing xlsx: %w", err)
		}
		n = len(rows.Entries())
	case "sqlite":
		db, err := store.Open(out)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		n, err = db.ReplaceEntries(rows, dataFile())
		if err != nil {
			return fmt.Errorf("writing sqlite: %w", err)
		}
	}

	log.Debug("export finished", "format", format, "out", out, "rows", n)
	fmt.Println(cli.RenderOK(fmt.Sprintf("  Exported %s to %s", cli.Plural(n, "entry", "entries"), displayPath(out))))
	return nil
}

func exportExt(format string) (string, error) {
	switch format {
	case "xlsx":
		return ".xlsx", nil
	case "sqlite":
		return ".db", nil
	}
	return "", fmt.Errorf("unknown export format %q (want xlsx or sqlite)", format)
}

// exportPath swaps the extension of the data file for ext.
func exportPath(dataPath, ext string) string {
	return strings.TrimSuffix(dataPath, filepath.Ext(dataPath)) + ext
}
