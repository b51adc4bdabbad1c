// =============================================================================
// Bill Converter - File Manager Utility
// =============================================================================
//
// File-system helpers for the converter:
//   - input resolution (the ".txt" suffix convenience, existence checks)
//   - output path derivation (extension swap, same directory as the input)
//   - sibling-ledger discovery for "file not found" hints
//   - error log and summary log generation
//
// The converter writes both documents next to the input file; there is no
// separate output directory and no archival between runs.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// =============================================================================
// INPUT RESOLUTION
// =============================================================================

// EnsureTxtExt appends the ".txt" suffix when the name does not already
// carry it, so "0603" resolves to "0603.txt". The comparison ignores case.
func EnsureTxtExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return name
	}
	return name + ".txt"
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ListLedgers returns the base names of all .txt files in the directory,
// sorted. Used to suggest candidates when the requested ledger is missing.
func ListLedgers(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var names []string
	for _, m := range matches {
		if FileExists(m) {
			names = append(names, filepath.Base(m))
		}
	}
	sort.Strings(names)
	return names, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ReplaceExt derives an output path from the input path by swapping the
// extension, keeping the directory. "bills/0603.txt" with ".docx" becomes
// "bills/0603.docx".
func ReplaceExt(path, newExt string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + newExt
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// WriteErrorLog writes the run's diagnostics to "<input>.errors.log" next to
// the generated documents. The header records when the log was written and
// which run produced it.
//
// Returns the path of the written log.
func WriteErrorLog(inputPath, runID string, diagnostics []string) (string, error) {
	logPath := ReplaceExt(inputPath, ".errors.log")

	var b strings.Builder
	fmt.Fprintf(&b, "# Error log for %s\n", filepath.Base(inputPath))
	fmt.Fprintf(&b, "# Run:     %s\n", runID)
	fmt.Fprintf(&b, "# Written: %s\n\n", time.Now().Format(time.RFC3339))
	for _, d := range diagnostics {
		b.WriteString(d)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return logPath, nil
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// RunSummary captures the counters of one processing run for the summary log.
type RunSummary struct {
	// RunID identifies the run that produced the log.
	RunID string

	// InputFile is the resolved ledger path.
	InputFile string

	// ReportFile and SheetFile are the generated output paths.
	ReportFile string
	SheetFile  string

	// TotalLines, ValidLines and GrandTotal are the run's aggregates.
	TotalLines int
	ValidLines int
	GrandTotal float64

	// DiagnosticCount is the number of lines that could not be processed.
	DiagnosticCount int

	// Elapsed is the processing time for the run.
	Elapsed time.Duration
}

// WriteSummaryLog writes a "<input>.summary.log" next to the generated
// documents. Returns the path of the written log.
func WriteSummaryLog(summary RunSummary) (string, error) {
	logPath := ReplaceExt(summary.InputFile, ".summary.log")

	var b strings.Builder
	fmt.Fprintf(&b, "Run:         %s\n", summary.RunID)
	fmt.Fprintf(&b, "Written:     %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Input:       %s\n", summary.InputFile)
	fmt.Fprintf(&b, "Report:      %s\n", summary.ReportFile)
	fmt.Fprintf(&b, "Sheet:       %s\n", summary.SheetFile)
	fmt.Fprintf(&b, "Total lines: %d\n", summary.TotalLines)
	fmt.Fprintf(&b, "Valid lines: %d\n", summary.ValidLines)
	fmt.Fprintf(&b, "Grand total: $%.2f\n", summary.GrandTotal)
	fmt.Fprintf(&b, "Diagnostics: %d\n", summary.DiagnosticCount)
	fmt.Fprintf(&b, "Elapsed:     %s\n", summary.Elapsed)

	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary log: %w", err)
	}
	return logPath, nil
}
