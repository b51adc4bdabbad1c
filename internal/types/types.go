// =============================================================================
// Bill Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ledger
//   - converter
//   - validation
//   - docxwriter / xlsxwriter
//
// =============================================================================

package types

// =============================================================================
// ROW TYPES
// =============================================================================

// RowKind discriminates the two row variants produced by classification.
type RowKind int

const (
	// KindCategory is a section header with no price.
	KindCategory RowKind = iota

	// KindItem is a priced entry with an optional quantity.
	KindItem
)

// Row is one classified line of the ledger, either a section header
// (category) or a priced entry (item).
type Row struct {
	// Kind selects which of the fields below are meaningful.
	Kind RowKind

	// Label is the section header text. Only set for category rows; the
	// stripped line text is used verbatim, case preserved.
	Label string

	// Name is the item name. Only set for item rows.
	Name string

	// Quantity is the item quantity token (e.g. "2pcs"). Empty when the
	// line carried no quantity.
	Quantity string

	// Price is the price literal exactly as it appeared after the currency
	// marker. It is not validated at classification time; rows whose price
	// fails to parse are kept but excluded from the totals.
	Price string

	// Line is the 1-based source line number, kept for error reporting.
	Line int
}

// =============================================================================
// AGGREGATE RESULT
// =============================================================================

// AggregateResult is the outcome of classifying one ledger file. One result
// is built per run, handed to the two renderers, and discarded.
type AggregateResult struct {
	// Rows holds the classified rows in input order, categories and items
	// interleaved exactly as they appeared in the file.
	Rows []Row

	// TotalLines counts every physical line in the input, blanks included.
	TotalLines int

	// ValidLines counts only item rows whose price parsed as a float.
	ValidLines int

	// GrandTotal is the sum of all successfully parsed item prices.
	GrandTotal float64

	// Errors holds one human-readable diagnostic per unprocessable line,
	// in input order. A non-empty list does not fail the run.
	Errors []string
}

// ItemCount returns the number of item rows.
func (r *AggregateResult) ItemCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Kind == KindItem {
			n++
		}
	}
	return n
}

// CategoryCount returns the number of category rows.
func (r *AggregateResult) CategoryCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Kind == KindCategory {
			n++
		}
	}
	return n
}
