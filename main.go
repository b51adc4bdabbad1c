// =============================================================================
// Bill Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the bill converter CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd
// package.
//
// USAGE:
//   billconv process <file>   - Convert one ledger to a report and a sheet
//   billconv version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/sophiabills/bill-converter/cmd"
)

func main() {
	cmd.Execute()
}
