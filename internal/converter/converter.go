// =============================================================================
// Bill Converter - Converter Module
// =============================================================================
//
// This module orchestrates the pipeline for a single ledger file:
//
//   1. Resolve the input file (the ".txt" suffix convenience)
//   2. Read the file fully into memory
//   3. Classify every line and accumulate the totals
//   4. Check the result is render-ready
//   5. Render the Word report and the spreadsheet next to the input
//   6. Write the error/summary logs when configured
//
// Content-level problems (unparsable lines) never fail a run; they travel on
// the result as diagnostics and the documents are still produced. Only a
// missing input or a renderer failure makes the run unsuccessful.
//
// =============================================================================

package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sophiabills/bill-converter/internal/config"
	"github.com/sophiabills/bill-converter/internal/docxwriter"
	"github.com/sophiabills/bill-converter/internal/ledger"
	"github.com/sophiabills/bill-converter/internal/validation"
	"github.com/sophiabills/bill-converter/internal/xlsxwriter"
	"github.com/sophiabills/bill-converter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single ledger.
type Result struct {
	// InputFile is the resolved path of the ledger that was processed.
	InputFile string

	// ReportFile is the path of the generated .docx report. Empty when
	// processing failed or the run was a dry run.
	ReportFile string

	// SheetFile is the path of the generated .xlsx spreadsheet. Empty when
	// processing failed or the run was a dry run.
	SheetFile string

	// Success indicates whether the run completed. A run with content
	// diagnostics still counts as successful.
	Success bool

	// Error contains the failure when Success is false.
	Error error

	// Diagnostics holds the per-line problems, in input order.
	Diagnostics []string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// TotalLines counts every physical input line, blanks included.
	TotalLines int

	// ValidLines counts item rows whose price parsed.
	ValidLines int

	// ItemRows and CategoryRows count the classified rows by kind.
	ItemRows     int
	CategoryRows int

	// GrandTotal is the accumulated sum of parsed prices.
	GrandTotal float64

	// ProcessingTime is the time taken for the whole run.
	ProcessingTime time.Duration
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the interface the converter logs through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// defaultLogger prints to stdout with a level prefix. Debug output is
// suppressed unless enabled.
type defaultLogger struct {
	debug bool
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single ledger file.
type Converter struct {
	// inputName is the ledger name or path as given by the caller.
	inputName string

	// title is the document title, already defaulted by the caller.
	title string

	// cfg is the application configuration.
	cfg *config.Config

	// dryRun stops the pipeline before any file is written.
	dryRun bool

	// runID identifies this run in the error and summary logs.
	runID string

	logger Logger
}

// New creates a Converter for one ledger file. An empty title falls back to
// the configured default.
func New(inputName, title string, cfg *config.Config) *Converter {
	if strings.TrimSpace(title) == "" {
		title = cfg.DefaultTitle
	}
	return &Converter{
		inputName: inputName,
		title:     title,
		cfg:       cfg,
		runID:     uuid.New().String(),
		logger:    &defaultLogger{debug: cfg.LogLevel == "debug"},
	}
}

// SetDryRun stops the pipeline before any file is written.
func (c *Converter) SetDryRun(dryRun bool) { c.dryRun = dryRun }

// SetLogger replaces the default stdout logger.
func (c *Converter) SetLogger(logger Logger) { c.logger = logger }

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline and reports the outcome. It never panics and
// returns a Result in every case.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{}

	// Resolve the input. Missing input is the one failure surfaced before
	// classification; the message lists sibling ledgers as a hint.
	inputPath := utils.EnsureTxtExt(c.inputName)
	result.InputFile = inputPath

	if !utils.FileExists(inputPath) {
		result.Error = c.notFoundError(inputPath)
		return result
	}

	c.logger.Info("Processing ledger: %s", inputPath)

	lines, err := ledger.ReadLines(inputPath)
	if err != nil {
		result.Error = err
		return result
	}
	c.logger.Debug("Read %d line(s)", len(lines))

	aggregate := ledger.Classify(lines)
	result.Diagnostics = aggregate.Errors
	result.Stats = ProcessingStats{
		TotalLines:   aggregate.TotalLines,
		ValidLines:   aggregate.ValidLines,
		ItemRows:     aggregate.ItemCount(),
		CategoryRows: aggregate.CategoryCount(),
		GrandTotal:   aggregate.GrandTotal,
	}
	c.logger.Debug("Classified %d row(s), %d diagnostic(s)", len(aggregate.Rows), len(aggregate.Errors))

	for _, d := range aggregate.Errors {
		c.logger.Warn("%s", d)
	}

	// The classifier owns row shaping; this guards the renderers against a
	// result with missing fields or inconsistent counters.
	if verrs := validation.Validate(aggregate); len(verrs) > 0 {
		result.Error = fmt.Errorf("result not render-ready: %s", validation.FormatErrors(verrs))
		return result
	}

	if c.dryRun {
		c.logger.Info("Dry run: skipping document generation")
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	reportPath := utils.ReplaceExt(inputPath, ".docx")
	sheetPath := utils.ReplaceExt(inputPath, ".xlsx")

	if err := docxwriter.WriteWithOptions(aggregate, c.title, reportPath, docxwriter.Options{
		Author: c.cfg.ReportAuthor,
	}); err != nil {
		result.Error = fmt.Errorf("failed to render report: %w", err)
		return result
	}
	result.ReportFile = reportPath
	c.logger.Info("Wrote report: %s", reportPath)

	if err := xlsxwriter.WriteWithOptions(aggregate, c.title, sheetPath, xlsxwriter.Options{
		FontName: c.cfg.SheetFont,
		Author:   c.cfg.ReportAuthor,
	}); err != nil {
		result.Error = fmt.Errorf("failed to render spreadsheet: %w", err)
		return result
	}
	result.SheetFile = sheetPath
	c.logger.Info("Wrote spreadsheet: %s", sheetPath)

	result.Stats.ProcessingTime = time.Since(startTime)
	c.writeLogs(&result)

	result.Success = true
	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// notFoundError builds the missing-input failure, listing the .txt files
// that do exist next to the requested path.
func (c *Converter) notFoundError(inputPath string) error {
	err := fmt.Errorf("%w: %s", ledger.ErrInputNotFound, inputPath)

	siblings, listErr := utils.ListLedgers(filepath.Dir(inputPath))
	if listErr != nil || len(siblings) == 0 {
		return err
	}
	return fmt.Errorf("%w (available: %s)", err, strings.Join(siblings, ", "))
}

// writeLogs writes the error and summary logs when configured. Log failures
// are warnings: the documents are already on disk and the run stands.
func (c *Converter) writeLogs(result *Result) {
	if c.cfg.ErrorLogEnabled() && len(result.Diagnostics) > 0 {
		logPath, err := utils.WriteErrorLog(result.InputFile, c.runID, result.Diagnostics)
		if err != nil {
			c.logger.Warn("Failed to write error log: %v", err)
		} else {
			c.logger.Info("Wrote error log: %s", logPath)
		}
	}

	if c.cfg.WriteSummaryLog {
		logPath, err := utils.WriteSummaryLog(utils.RunSummary{
			RunID:           c.runID,
			InputFile:       result.InputFile,
			ReportFile:      result.ReportFile,
			SheetFile:       result.SheetFile,
			TotalLines:      result.Stats.TotalLines,
			ValidLines:      result.Stats.ValidLines,
			GrandTotal:      result.Stats.GrandTotal,
			DiagnosticCount: len(result.Diagnostics),
			Elapsed:         result.Stats.ProcessingTime,
		})
		if err != nil {
			c.logger.Warn("Failed to write summary log: %v", err)
		} else {
			c.logger.Info("Wrote summary log: %s", logPath)
		}
	}
}
