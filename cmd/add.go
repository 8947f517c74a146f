package cmd

import (
	"fmt"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/dataset"
	"github.com/theirongolddev/pbudget/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddDate     string
	flagAddAmount   string
	flagAddCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append one entry without opening the form",
	Example: `  pbudget add --amount 12.50 --category Groceries
  pbudget add -d 2024-01-31 -a 900 -c Rent`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddDate, "date", "d", "", "Entry date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	date := flagAddDate
	if date == "" {
		date = model.Today()
	}

	entry, err := model.ParseEntry(model.FormInput{
		Date:     date,
		Amount:   flagAddAmount,
		Category: flagAddCategory,
	})
	if err != nil {
		return err
	}

	rows, err := dataset.Append(dataFile(), entry.Row())
	if err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}

	fmt.Println(cli.RenderOK(fmt.Sprintf("  Saved %s %s %s", entry.Row()[0], entry.Row()[1], entry.Category)))
	fmt.Println(cli.RenderMuted(fmt.Sprintf("  %s now holds %s",
		displayPath(dataFile()), cli.Plural(len(rows.Entries()), "entry", "entries"))))
	return nil
}
