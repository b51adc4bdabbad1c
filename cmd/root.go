// =============================================================================
// Bill Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command the other commands attach to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (billconv)
//   ├── processCmd (billconv process)
//   └── versionCmd (billconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "billconv",
	Short: "Bill Converter - Turn plain-text ledgers into Word and Excel documents",
	Long: `Bill Converter reads a plain-text ledger file, classifies each line as a
section header or a priced item, accumulates the grand total, and writes two
documents next to the input: a Word report (.docx) and a spreadsheet (.xlsx).

Lines that cannot be processed never abort a run; they are collected as
diagnostics, printed in the summary, and written to an error log so a
partially malformed ledger still produces a best-effort bill.

Example Usage:
  billconv process 0603                  # Converts 0603.txt in place
  billconv process bills/june.txt --title "JUNE BILL"
  billconv process 0603 --dry-run        # Classify and report, write nothing`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (defaults apply when it does not exist)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
