package cmd

import (
	"fmt"

	"github.com/theirongolddev/pbudget/internal/cli"
	"github.com/theirongolddev/pbudget/internal/dataset"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List the distinct categories in the data file",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	rows, err := loadData()
	if err != nil {
		return err
	}

	cats := dataset.Categories(rows)
	if len(cats) == 0 {
		fmt.Println("\n  No categories found.")
		if rows.ColumnIndex(dataset.CategoryColumn) < 0 {
			fmt.Println(cli.RenderWarn("  The header row has no \"category\" column."))
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CATEGORIES  %s", displayPath(dataFile()))))
	fmt.Println()

	table := cli.Table{Headers: []string{"Category"}}
	for _, c := range cats {
		table.Rows = append(table.Rows, []string{c})
	}
	fmt.Print(cli.RenderTable(table))
	fmt.Println(cli.RenderMuted("  " + cli.Plural(len(cats), "category", "categories")))
	return nil
}
