// =============================================================================
// Bill Converter - Result Validation Module
// =============================================================================
//
// This module checks that a classified result is render-ready before the
// document writers run. The classifier is expected to always produce
// well-formed rows; these checks exist so that a renderer never receives a
// row with missing fields or counters that contradict the row list.
//
// Validation failures here are internal errors, not content diagnostics:
// content problems (unparsable lines) are already recorded on the result
// itself and never fail the run.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/sophiabills/bill-converter/internal/types"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError describes one render-readiness violation.
type ValidationError struct {
	// Line is the 1-based source line of the offending row, or 0 when the
	// violation concerns the result as a whole.
	Line int

	// Field names the part of the row or result that is invalid.
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("row at line %d: %s: %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that every row carries the fields its kind requires and
// that the counters are consistent with the row list. A nil slice means the
// result is safe to hand to the renderers.
func Validate(result *types.AggregateResult) []*ValidationError {
	var errs []*ValidationError

	if result == nil {
		return []*ValidationError{{Field: "result", Message: "is nil"}}
	}

	for _, row := range result.Rows {
		switch row.Kind {
		case types.KindCategory:
			if row.Label == "" {
				errs = append(errs, &ValidationError{
					Line: row.Line, Field: "label", Message: "category row has no label",
				})
			}
		case types.KindItem:
			if row.Name == "" {
				errs = append(errs, &ValidationError{
					Line: row.Line, Field: "name", Message: "item row has no name",
				})
			}
			if row.Price == "" {
				errs = append(errs, &ValidationError{
					Line: row.Line, Field: "price", Message: "item row has no price",
				})
			}
		default:
			errs = append(errs, &ValidationError{
				Line: row.Line, Field: "kind", Message: fmt.Sprintf("unknown row kind %d", row.Kind),
			})
		}
	}

	itemCount := result.ItemCount()
	if result.ValidLines > itemCount {
		errs = append(errs, &ValidationError{
			Field:   "valid_lines",
			Message: fmt.Sprintf("%d exceeds item row count %d", result.ValidLines, itemCount),
		})
	}
	if len(result.Rows) > result.TotalLines {
		errs = append(errs, &ValidationError{
			Field:   "rows",
			Message: fmt.Sprintf("%d rows from %d input lines", len(result.Rows), result.TotalLines),
		})
	}

	return errs
}

// FormatErrors renders a list of validation errors as a single readable
// block, one violation per line.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d validation error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(&b, "  - %s\n", e.Error())
	}
	return b.String()
}
