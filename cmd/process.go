// =============================================================================
// Bill Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which converts one ledger file
// into the two output documents.
//
// COMMAND USAGE:
//   billconv process <file> [flags]
//
// FLAGS:
//   --title    : Document title (default comes from the configuration)
//   --dry-run  : Classify and summarize without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Resolve the ledger file (".txt" is appended when missing)
//   3. Classify every line and accumulate the grand total
//   4. Render the Word report and the spreadsheet next to the input
//   5. Print the run summary with any diagnostics
//
// One invocation processes exactly one ledger. Processing another file is a
// new invocation, which replaces the original tool's dialog loop.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sophiabills/bill-converter/internal/config"
	"github.com/sophiabills/bill-converter/internal/converter"
)

// dryRun classifies and summarizes without writing output files.
var dryRun bool

// title overrides the configured default document title.
var title string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Convert one ledger file to a Word report and a spreadsheet",
	Long: `The process command reads the given ledger file, classifies each line as a
section header or a priced item, and writes two documents into the same
directory as the input: <name>.docx and <name>.xlsx.

The file argument may omit the .txt suffix: "0603" resolves to "0603.txt".

Diagnostics (lines with multiple "$" markers, unparsable priced lines,
prices that fail to parse) are printed in the summary and written to
<name>.errors.log; they never abort the run.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&title,
		"title",
		"",
		"Document title (defaults to the configured default_title)",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Classify and summarize without writing output files",
	)
}

// runProcess loads the configuration, runs the converter for the one file,
// and prints the summary.
func runProcess(inputName string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	conv := converter.New(inputName, title, cfg)
	conv.SetDryRun(dryRun)

	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	printSummary(result)
	return nil
}

// printSummary prints the block the original tool showed in its result
// window: output paths, counters, grand total, and every diagnostic.
func printSummary(result converter.Result) {
	fmt.Println("\n=== Processing Complete ===")
	if result.ReportFile != "" {
		fmt.Printf("Report:       %s\n", result.ReportFile)
	}
	if result.SheetFile != "" {
		fmt.Printf("Spreadsheet:  %s\n", result.SheetFile)
	}
	fmt.Printf("Total lines:  %d\n", result.Stats.TotalLines)
	fmt.Printf("Valid lines:  %d\n", result.Stats.ValidLines)
	fmt.Printf("Grand total:  $%.2f\n", result.Stats.GrandTotal)
	fmt.Printf("Time elapsed: %s\n", result.Stats.ProcessingTime)

	if len(result.Diagnostics) > 0 {
		fmt.Printf("\nThe following %d line(s) could not be processed:\n", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Printf("  %s\n", d)
		}
	} else {
		fmt.Println("\nAll lines processed successfully.")
	}
}
