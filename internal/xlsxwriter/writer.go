// =============================================================================
// Bill Converter - Spreadsheet Writer
// =============================================================================
//
// This module renders a classified ledger as an .xlsx workbook:
//
//   row 1      : merged 1x3 title row, uppercased, bold, centered
//   row 2      : Name / Quantity / Price header row
//   row 3..n   : category rows merged across the three columns, item rows
//                as three centered cells with the price prefixed by "$"
//   total      : 2x3 merged "Grand Total" block
//   footer     : 2x3 merged invoice footer with the current date
//
// Prices are written as the original string literals; the writer never
// reformats or revalidates them.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sophiabills/bill-converter/internal/types"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the visual styling of the workbook.
type Options struct {
	// FontName is applied to every styled cell.
	FontName string

	// Author is printed in the invoice footer and the document properties.
	Author string
}

// DefaultOptions returns the styling the original tool used.
func DefaultOptions() Options {
	return Options{
		FontName: "Times New Roman",
		Author:   "Sophia",
	}
}

// =============================================================================
// WRITER
// =============================================================================

// Write renders the result to an .xlsx file at path using default options.
func Write(result *types.AggregateResult, title, path string) error {
	return WriteWithOptions(result, title, path, DefaultOptions())
}

// WriteWithOptions renders the result to an .xlsx file at path.
func WriteWithOptions(result *types.AggregateResult, title, path string, opts Options) error {
	f := excelize.NewFile()
	defer func() {
		// Best effort: SaveAs has already reported the interesting error.
		_ = f.Close()
	}()

	f.SetAppProps(&excelize.AppProperties{
		Application: "Bill Converter",
	})
	f.SetDocProps(&excelize.DocProperties{
		Creator:        opts.Author,
		LastModifiedBy: opts.Author,
	})

	sheet := sheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		// An unusable title (Excel forbids some characters) falls back to
		// the default sheet name, mirroring the original's silent recovery.
		sheet = "Sheet1"
	}

	// Column widths: name, quantity, price.
	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 15); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	styles, err := buildStyles(f, opts)
	if err != nil {
		return err
	}

	// Row 1: merged title row.
	if err := f.MergeCell(sheet, "A1", "C1"); err != nil {
		return fmt.Errorf("failed to merge title row: %w", err)
	}
	f.SetCellValue(sheet, "A1", strings.ToUpper(title))
	f.SetCellStyle(sheet, "A1", "C1", styles.title)

	// Row 2: column headers.
	for i, h := range []string{"Name", "Quantity", "Price"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	// Data rows start below the headers.
	rowIdx := 3
	for _, row := range result.Rows {
		switch row.Kind {
		case types.KindCategory:
			start := fmt.Sprintf("A%d", rowIdx)
			end := fmt.Sprintf("C%d", rowIdx)
			if err := f.MergeCell(sheet, start, end); err != nil {
				return fmt.Errorf("failed to merge category row: %w", err)
			}
			f.SetCellValue(sheet, start, row.Label)
			f.SetCellStyle(sheet, start, end, styles.header)
			rowIdx++

		case types.KindItem:
			values := []interface{}{row.Name, row.Quantity, "$" + row.Price}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
				f.SetCellValue(sheet, cell, v)
				f.SetCellStyle(sheet, cell, cell, styles.item)
			}
			rowIdx++
		}
	}

	// Grand total: a 2x3 merged block.
	gtStart := fmt.Sprintf("A%d", rowIdx)
	gtEnd := fmt.Sprintf("C%d", rowIdx+1)
	if err := f.MergeCell(sheet, gtStart, gtEnd); err != nil {
		return fmt.Errorf("failed to merge grand total block: %w", err)
	}
	f.SetCellValue(sheet, gtStart, fmt.Sprintf("Grand Total: $%.2f", result.GrandTotal))
	f.SetCellStyle(sheet, gtStart, gtEnd, styles.total)
	rowIdx += 2

	// Invoice footer: a 2x3 merged block with raised row heights so the
	// wrapped text is not cut off.
	footer := fmt.Sprintf(
		"Invoice prepared by %s\nInvoice date: %s\nIf you have any queries regarding this invoice, please contact us.\nMany thanks for your custom.",
		opts.Author, time.Now().Format("02 January 2006"))
	fStart := fmt.Sprintf("A%d", rowIdx)
	fEnd := fmt.Sprintf("C%d", rowIdx+1)
	if err := f.MergeCell(sheet, fStart, fEnd); err != nil {
		return fmt.Errorf("failed to merge footer block: %w", err)
	}
	f.SetCellValue(sheet, fStart, footer)
	f.SetCellStyle(sheet, fStart, fEnd, styles.footer)
	f.SetRowHeight(sheet, rowIdx, 30)
	f.SetRowHeight(sheet, rowIdx+1, 30)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	return nil
}

// =============================================================================
// STYLES
// =============================================================================

// styleSet holds the style IDs used throughout the sheet.
type styleSet struct {
	title  int
	header int
	item   int
	total  int
	footer int
}

// buildStyles registers the five cell styles with the workbook.
func buildStyles(f *excelize.File, opts Options) (styleSet, error) {
	var s styleSet
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: opts.FontName, Bold: true, Size: 14},
		Alignment: center,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create title style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: opts.FontName, Bold: true},
		Alignment: center,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	s.item, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: opts.FontName},
		Alignment: center,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create item style: %w", err)
	}

	s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: opts.FontName, Bold: true, Size: 12},
		Alignment: center,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create total style: %w", err)
	}

	s.footer, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: opts.FontName, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create footer style: %w", err)
	}

	return s, nil
}

// sheetName derives a legal sheet tab name from the document title. Excel
// caps tab names at 31 characters.
func sheetName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		return "Sheet1"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
