// =============================================================================
// Bill Converter - Ledger Line Classifier
// =============================================================================
//
// This module is the core of the converter. It takes the raw lines of a
// plain-text ledger and classifies each one as a category header, an item
// row, or a diagnostic, while accumulating the grand total.
//
// LINE GRAMMAR:
//   - Category : any line without a currency marker that is not an item
//   - Item     : "<name> <quantity><unit?> $<price>"  (full form)
//                "<name> $<price>"                    (short form)
//   - Unit suffixes on the quantity: kg, pcs, set, p; optional trailing dot
//
// A line with more than one "$" is rejected outright. A line containing "$"
// that matches no pattern becomes a diagnostic, never a category. Malformed
// content never aborts the run; the classifier degrades to diagnostics.
//
// =============================================================================

package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sophiabills/bill-converter/internal/types"
)

// =============================================================================
// LINE PATTERNS
// =============================================================================

// patternFull matches a complete item line: name, quantity with an optional
// unit suffix and optional trailing dot, then the price after "$".
// The name group is non-greedy so it claims the shortest run before the
// quantity token.
var patternFull = regexp.MustCompile(`^(.+?)\s+([\d.]+(?:kg|pcs|set|p)?\.?)\s*\$([\d.]+)`)

// patternShort matches an item line without a quantity: name directly
// followed by the priced token.
var patternShort = regexp.MustCompile(`^(.+?)\s*\$([\d.]+)`)

// patternLoose is the lowest-precedence fallback: a whitespace-separated
// name followed by "$" and an arbitrary price token. It exists so that lines
// like "Item $abc" surface as a price-parse diagnostic on an item row, while
// glued forms like "Broken$abc" stay unparsable. Tried only after the two
// strict patterns have failed.
var patternLoose = regexp.MustCompile(`^(.+?)\s+\$(\S+)`)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify runs the single linear pass over the input lines and builds the
// aggregate result. Lines are 1-indexed in diagnostics. The pass never
// fails: all content-level problems are recorded as diagnostic strings and
// processing continues with the next line.
func Classify(lines []string) *types.AggregateResult {
	result := &types.AggregateResult{}

	for idx, raw := range lines {
		lineNo := idx + 1
		result.TotalLines++

		text := strings.TrimSpace(raw)
		if text == "" {
			// Blank lines count toward the total but are not diagnostics.
			continue
		}

		// A line with two or more currency markers is ambiguous; reject it
		// before any pattern matching.
		if strings.Count(text, "$") > 1 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("[Line %d] multiple currency markers, cannot process: %s", lineNo, text))
			continue
		}

		mFull := patternFull.FindStringSubmatch(text)
		mShort := patternShort.FindStringSubmatch(text)

		// Category rule: not an item in either form and no currency marker
		// anywhere. This is how arbitrary unpriced text becomes a section
		// header, including lines with no structure at all.
		if mFull == nil && mShort == nil && !strings.Contains(text, "$") {
			result.Rows = append(result.Rows, types.Row{
				Kind:  types.KindCategory,
				Label: text,
				Line:  lineNo,
			})
			continue
		}

		var name, qty, price string
		switch {
		case mFull != nil:
			name, qty, price = mFull[1], mFull[2], mFull[3]
		case mShort != nil:
			name, price = mShort[1], mShort[2]
		default:
			if mLoose := patternLoose.FindStringSubmatch(text); mLoose != nil {
				name, price = mLoose[1], mLoose[2]
			} else {
				// Contains "$" but matches nothing: diagnostic, no row.
				result.Errors = append(result.Errors,
					fmt.Sprintf("[Line %d] unable to parse: %s", lineNo, text))
				continue
			}
		}

		name = strings.TrimSpace(name)
		qty = strings.TrimSpace(qty)
		price = strings.TrimSpace(price)

		result.Rows = append(result.Rows, types.Row{
			Kind:     types.KindItem,
			Name:     name,
			Quantity: qty,
			Price:    price,
			Line:     lineNo,
		})

		// The row is kept either way; only a parsable price contributes to
		// the totals.
		value, err := strconv.ParseFloat(price, 64)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("[Line %d] price parse failed: %s", lineNo, price))
			continue
		}
		result.GrandTotal += value
		result.ValidLines++
	}

	return result
}
