package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sophiabills/bill-converter/internal/config"
	"github.com/sophiabills/bill-converter/internal/ledger"
)

// testLogger collects log lines instead of printing them.
type testLogger struct {
	lines []string
}

func (l *testLogger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg, args...) }
func (l *testLogger) Info(msg string, args ...interface{})  { l.record("INFO", msg, args...) }
func (l *testLogger) Warn(msg string, args ...interface{})  { l.record("WARN", msg, args...) }
func (l *testLogger) Error(msg string, args ...interface{}) { l.record("ERROR", msg, args...) }

func (l *testLogger) record(level, msg string, args ...interface{}) {
	l.lines = append(l.lines, "["+level+"] "+fmt.Sprintf(msg, args...))
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultTitle: "PRODUCTS",
		ReportAuthor: "Sophia",
		SheetFont:    "Times New Roman",
		LogLevel:     "info",
	}
}

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0603.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	input := writeLedger(t, "Drinks\nCoke 2pcs $3.00\nWater $1.50\nOops$\n")

	conv := New(input, "Groceries", testConfig())
	conv.SetLogger(&testLogger{})
	result := conv.Run()

	require.True(t, result.Success)
	require.NoError(t, result.Error)
	assert.Equal(t, input, result.InputFile)

	assert.FileExists(t, result.ReportFile)
	assert.FileExists(t, result.SheetFile)
	assert.Equal(t, ".docx", filepath.Ext(result.ReportFile))
	assert.Equal(t, ".xlsx", filepath.Ext(result.SheetFile))

	assert.Equal(t, 4, result.Stats.TotalLines)
	assert.Equal(t, 2, result.Stats.ValidLines)
	assert.Equal(t, 2, result.Stats.ItemRows)
	assert.Equal(t, 1, result.Stats.CategoryRows)
	assert.InDelta(t, 4.50, result.Stats.GrandTotal, 0.001)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "[Line 4] unable to parse: Oops$", result.Diagnostics[0])

	// The error log defaults to enabled and the run had a diagnostic.
	errorLog := filepath.Join(filepath.Dir(input), "0603.errors.log")
	assert.FileExists(t, errorLog)
}

func TestRunResolvesBareName(t *testing.T) {
	input := writeLedger(t, "Coke $3.00\n")
	bare := input[:len(input)-len(".txt")]

	conv := New(bare, "", testConfig())
	conv.SetLogger(&testLogger{})
	result := conv.Run()

	require.True(t, result.Success)
	assert.Equal(t, input, result.InputFile)

	// An empty title falls back to the configured default, which names the
	// spreadsheet tab.
	f, err := excelize.OpenFile(result.SheetFile)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "PRODUCTS", f.GetSheetName(0))
}

func TestRunDryRun(t *testing.T) {
	input := writeLedger(t, "Coke $3.00\n")

	conv := New(input, "Groceries", testConfig())
	conv.SetLogger(&testLogger{})
	conv.SetDryRun(true)
	result := conv.Run()

	require.True(t, result.Success)
	assert.Empty(t, result.ReportFile)
	assert.Empty(t, result.SheetFile)
	assert.InDelta(t, 3.0, result.Stats.GrandTotal, 0.001)

	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "a dry run writes nothing")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0701.txt"), nil, 0644))

	conv := New(filepath.Join(dir, "0603"), "Groceries", testConfig())
	conv.SetLogger(&testLogger{})
	result := conv.Run()

	require.False(t, result.Success)
	require.Error(t, result.Error)
	assert.True(t, errors.Is(result.Error, ledger.ErrInputNotFound))
	assert.Contains(t, result.Error.Error(), "available: 0701.txt")
}

func TestRunSummaryLog(t *testing.T) {
	input := writeLedger(t, "Coke $3.00\n")

	cfg := testConfig()
	cfg.WriteSummaryLog = true

	conv := New(input, "Groceries", cfg)
	conv.SetLogger(&testLogger{})
	result := conv.Run()

	require.True(t, result.Success)
	summaryLog := filepath.Join(filepath.Dir(input), "0603.summary.log")
	require.FileExists(t, summaryLog)

	data, err := os.ReadFile(summaryLog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Grand total: $3.00")
}

func TestRunErrorLogDisabled(t *testing.T) {
	input := writeLedger(t, "Oops$\n")

	disabled := false
	cfg := testConfig()
	cfg.WriteErrorLog = &disabled

	conv := New(input, "Groceries", cfg)
	conv.SetLogger(&testLogger{})
	result := conv.Run()

	require.True(t, result.Success)
	require.NotEmpty(t, result.Diagnostics)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "0603.errors.log"))
}
