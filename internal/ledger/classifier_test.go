package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiabills/bill-converter/internal/types"
)

func category(label string, line int) types.Row {
	return types.Row{Kind: types.KindCategory, Label: label, Line: line}
}

func item(name, qty, price string, line int) types.Row {
	return types.Row{Kind: types.KindItem, Name: name, Quantity: qty, Price: price, Line: line}
}

func TestClassifyMixedLedger(t *testing.T) {
	result := Classify([]string{
		"Drinks",
		"Coke 2pcs $3.00",
		"Water $1.50",
	})

	require.Equal(t, []types.Row{
		category("Drinks", 1),
		item("Coke", "2pcs", "3.00", 2),
		item("Water", "", "1.50", 3),
	}, result.Rows)
	assert.Equal(t, 3, result.TotalLines)
	assert.Equal(t, 2, result.ValidLines)
	assert.InDelta(t, 4.50, result.GrandTotal, 1e-9)
	assert.Empty(t, result.Errors)
}

func TestClassifyMultipleCurrencyMarkers(t *testing.T) {
	result := Classify([]string{"Snack $1 $2"})

	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.ValidLines)
	assert.Zero(t, result.GrandTotal)
	require.Equal(t,
		[]string{"[Line 1] multiple currency markers, cannot process: Snack $1 $2"},
		result.Errors)
}

func TestClassifyBareTextBecomesCategory(t *testing.T) {
	result := Classify([]string{"Chips"})

	require.Equal(t, []types.Row{category("Chips", 1)}, result.Rows)
	assert.Equal(t, 0, result.ValidLines)
	assert.Empty(t, result.Errors)
}

func TestClassifyGluedMarkerIsUnparsable(t *testing.T) {
	result := Classify([]string{"Broken$abc"})

	assert.Empty(t, result.Rows)
	require.Equal(t, []string{"[Line 1] unable to parse: Broken$abc"}, result.Errors)
}

func TestClassifyNonNumericPriceKeepsRow(t *testing.T) {
	result := Classify([]string{"Item $abc"})

	require.Equal(t, []types.Row{item("Item", "", "abc", 1)}, result.Rows)
	require.Equal(t, []string{"[Line 1] price parse failed: abc"}, result.Errors)
	assert.Equal(t, 0, result.ValidLines)
	assert.Zero(t, result.GrandTotal)
}

func TestClassifyEmptyInput(t *testing.T) {
	result := Classify(nil)

	assert.Equal(t, 0, result.TotalLines)
	assert.Equal(t, 0, result.ValidLines)
	assert.Zero(t, result.GrandTotal)
	assert.Empty(t, result.Rows)
	assert.Empty(t, result.Errors)
}

func TestClassifyLineHandling(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		want  []types.Row
		errs  []string
		valid int
	}{
		{
			name:  "item with unit suffix and trailing dot",
			line:  "Rice 2.5kg. $12.80",
			want:  []types.Row{item("Rice", "2.5kg.", "12.80", 1)},
			valid: 1,
		},
		{
			name:  "item with bare numeric quantity",
			line:  "Eggs 12 $4.20",
			want:  []types.Row{item("Eggs", "12", "4.20", 1)},
			valid: 1,
		},
		{
			name:  "item with set suffix",
			line:  "Bowls 2set $9",
			want:  []types.Row{item("Bowls", "2set", "9", 1)},
			valid: 1,
		},
		{
			name:  "short form with glued numeric price",
			line:  "Water$1.50",
			want:  []types.Row{item("Water", "", "1.50", 1)},
			valid: 1,
		},
		{
			name: "multi-dot price fails the parse but keeps the row",
			line: "Juice $1.2.3",
			want: []types.Row{item("Juice", "", "1.2.3", 1)},
			errs: []string{"[Line 1] price parse failed: 1.2.3"},
		},
		{
			name:  "multi-word name before the price",
			line:  "Olive Oil $8.99",
			want:  []types.Row{item("Olive Oil", "", "8.99", 1)},
			valid: 1,
		},
		{
			name: "unpriced item line is still a category",
			line: "Bread 2pcs",
			want: []types.Row{category("Bread 2pcs", 1)},
		},
		{
			name: "surrounding whitespace is stripped",
			line: "   Milk $2.00   ",
			want: []types.Row{item("Milk", "", "2.00", 1)},
			valid: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify([]string{tc.line})
			assert.Equal(t, tc.want, result.Rows)
			if tc.errs == nil {
				assert.Empty(t, result.Errors)
			} else {
				assert.Equal(t, tc.errs, result.Errors)
			}
			assert.Equal(t, tc.valid, result.ValidLines)
		})
	}
}

func TestClassifyBlankLinesCountedNotReported(t *testing.T) {
	result := Classify([]string{"", "  ", "Water $1.50", ""})

	assert.Equal(t, 4, result.TotalLines)
	assert.Equal(t, 1, result.ValidLines)
	require.Len(t, result.Rows, 1)
	assert.Empty(t, result.Errors)
}

func TestClassifyFullPatternWinsOverShort(t *testing.T) {
	// Both patterns accept this line; the groups must come from the full
	// pattern so the quantity is not swallowed into the name.
	result := Classify([]string{"Coke 2pcs $3.00"})

	require.Equal(t, []types.Row{item("Coke", "2pcs", "3.00", 1)}, result.Rows)
}

func TestClassifyPreservesInputOrder(t *testing.T) {
	result := Classify([]string{
		"Drinks",
		"Coke $3.00",
		"Bad $x $y",
		"Snacks",
		"Chips $2.00",
		"Oops$",
	})

	require.Len(t, result.Rows, 4)
	assert.Equal(t, []int{1, 2, 4, 5}, []int{
		result.Rows[0].Line, result.Rows[1].Line, result.Rows[2].Line, result.Rows[3].Line,
	})
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "[Line 3]")
	assert.Contains(t, result.Errors[1], "[Line 6]")
}

func TestClassifyIsIdempotent(t *testing.T) {
	lines := []string{
		"Drinks",
		"Coke 2pcs $3.00",
		"",
		"Item $abc",
		"Snack $1 $2",
	}

	first := Classify(lines)
	second := Classify(lines)
	assert.Equal(t, first, second)
}

func TestClassifyCounterInvariants(t *testing.T) {
	lines := []string{
		"Groceries",
		"Rice 5kg $22.50",
		"",
		"Broken$abc",
		"Juice $1.2.3",
		"Water $1.50",
	}
	result := Classify(lines)

	assert.Equal(t, len(lines), result.TotalLines)
	items := result.ItemCount()
	assert.LessOrEqual(t, result.ValidLines, items)
	assert.LessOrEqual(t, items, result.TotalLines)
	assert.InDelta(t, 24.00, result.GrandTotal, 1e-9)
}
