// Package export writes a budget dataset to spreadsheet formats.
package export

import (
	"fmt"

	"github.com/theirongolddev/pbudget/internal/dataset"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the exported rows.
const SheetName = "Budget"

// WriteXLSX writes d to a new workbook at path. The header row is bold and
// values in the amount column are stored as numbers when they parse.
func WriteXLSX(path string, d dataset.Dataset) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	amountIdx := d.ColumnIndex("amount")

	for r, row := range d {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			var value any = v
			if r > 0 && c == amountIdx {
				if n, err := decimal.NewFromString(v); err == nil {
					value = n.InexactFloat64()
				}
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("writing %s: %w", cell, err)
			}
		}
	}

	if len(d) > 0 && len(d[0]) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("creating header style: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(d[0]), 1)
		if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
		_ = f.SetColWidth(SheetName, "A", "A", 14) // date
		if catIdx := d.ColumnIndex(dataset.CategoryColumn); catIdx >= 0 {
			col, _ := excelize.ColumnNumberToName(catIdx + 1)
			_ = f.SetColWidth(SheetName, col, col, 22)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
