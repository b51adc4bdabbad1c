package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bill.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadLinesPreservesBlanks(t *testing.T) {
	path := writeLedger(t, "Drinks\n\nCoke $3.00\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drinks", "", "Coke $3.00"}, lines)
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := writeLedger(t, "")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
}

func TestReadLinesWithoutTrailingNewline(t *testing.T) {
	path := writeLedger(t, "Water $1.50")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water $1.50"}, lines)
}
