package cmd

import (
	"fmt"

	"github.com/theirongolddev/pbudget/internal/cli"

	"github.com/spf13/cobra"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent rows of the data file",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 20, "Number of rows to show (0 for all)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	rows, err := loadData()
	if err != nil {
		return err
	}

	entries := rows.Entries()
	if len(entries) == 0 {
		fmt.Println("\n  No entries yet.")
		fmt.Println("  Run `pbudget` to record one.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ENTRIES  %s", displayPath(dataFile()))))
	fmt.Println()

	shown := cli.Tail(entries, flagListLimit)
	table := cli.Table{
		Headers: rows[0],
		Rows:    shown,
	}
	if i := rows.ColumnIndex("amount"); i >= 0 {
		table.RightAlign = []int{i}
	}
	fmt.Print(cli.RenderTable(table))

	if len(shown) < len(entries) {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  showing last %d of %s", len(shown),
			cli.Plural(len(entries), "entry", "entries"))))
	}
	return nil
}
