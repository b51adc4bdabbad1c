// =============================================================================
// Bill Converter - Word Report Writer
// =============================================================================
//
// This module renders a classified ledger as a .docx report:
//
//   - uppercased, bold, centered title
//   - a three-column Name / Quantity / Price table holding every classified
//     row in input order, category labels emphasized
//   - a trailing "Grand Total" row
//   - a footer block naming the author and the generation date
//
// The writer consumes the aggregate result as-is; the category/item decision
// and all totals were fixed at classification time.
//
// =============================================================================

package docxwriter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/sophiabills/bill-converter/internal/types"
)

// Font sizes in half-points, the unit OOXML runs use.
const (
	sizeTitle  = "28" // 14pt
	sizeRow    = "24" // 12pt
	sizeFooter = "20" // 10pt
)

// tableWidth is the fixed table width in twips.
const tableWidth = 8000

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the report's footer attribution.
type Options struct {
	// Author is the name printed in the footer block.
	Author string
}

// DefaultOptions returns the attribution the original tool used.
func DefaultOptions() Options {
	return Options{Author: "Sophia"}
}

// =============================================================================
// WRITER
// =============================================================================

// Write renders the result to a .docx file at path using default options.
func Write(result *types.AggregateResult, title, path string) error {
	return WriteWithOptions(result, title, path, DefaultOptions())
}

// WriteWithOptions renders the result to a .docx file at path.
func WriteWithOptions(result *types.AggregateResult, title, path string, opts Options) error {
	doc := docx.New().WithDefaultTheme()

	// Title: uppercased, bold, centered.
	titlePara := doc.AddParagraph()
	titlePara.AddText(strings.ToUpper(title)).Size(sizeTitle).Bold()
	titlePara.Justification("center")

	// One header row, one row per classified row, one grand-total row.
	rowCount := len(result.Rows) + 2
	table := doc.AddTable(rowCount, 3, tableWidth, nil)

	header := table.TableRows[0]
	for i, h := range []string{"Name", "Quantity", "Price"} {
		header.TableCells[i].AddParagraph().AddText(h).Bold()
	}

	for i, row := range result.Rows {
		cells := table.TableRows[i+1].TableCells
		switch row.Kind {
		case types.KindCategory:
			// The label occupies the leading cell; the siblings stay empty
			// so the row reads as a full-width section header.
			p := cells[0].AddParagraph()
			p.AddText(row.Label).Size(sizeRow).Bold()
			p.Justification("center")
		case types.KindItem:
			cells[0].AddParagraph().AddText(row.Name)
			cells[1].AddParagraph().AddText(row.Quantity)
			cells[2].AddParagraph().AddText("$" + row.Price)
		}
	}

	totalPara := table.TableRows[rowCount-1].TableCells[0].AddParagraph()
	totalPara.AddText(fmt.Sprintf("Grand Total: $%.2f", result.GrandTotal)).Size(sizeRow).Bold()
	totalPara.Justification("center")

	// Footer block: attribution line, then the generation date.
	doc.AddParagraph()
	doc.AddParagraph().AddText(fmt.Sprintf("This bill was made by %s", opts.Author)).Size(sizeFooter)
	doc.AddParagraph().AddText("Generated on: " + time.Now().Format("January 02, 2006")).Size(sizeFooter)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if _, err := doc.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
