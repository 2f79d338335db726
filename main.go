// =============================================================================
// Label IDoc Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Label IDoc Converter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   idoc convert FILE...    - Convert label spreadsheets into IDoc files
//   idoc template [OUT]     - Write an empty label workbook
//   idoc lookup [VALUE...]  - Show the graphic file for characteristic values
//   idoc version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Conversion pipeline (sheet, schema, label, idoc, ...)
//   - pkg/           : Output naming and report writers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/label-idoc-converter/cmd"
)

func main() {
	cmd.Execute()
}
