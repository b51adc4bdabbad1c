// =============================================================================
// Bill Converter - Ledger File Reader
// =============================================================================
//
// Reads a ledger file fully into memory before classification begins. The
// read is the only fatal step: a file that cannot be opened aborts the run
// before any line is classified.
//
// =============================================================================

package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// ErrInputNotFound reports a ledger file that does not exist. It is the only
// failure surfaced before classification starts.
var ErrInputNotFound = errors.New("input file not found")

// ReadLines reads the whole file and returns its physical lines, blanks
// included, in order. The file is interpreted as UTF-8-compatible text; no
// line is dropped for being malformed.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return lines, nil
}
