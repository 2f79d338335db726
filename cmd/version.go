// =============================================================================
// Label IDoc Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version and build information.
//
// COMMAND USAGE:
//   idoc version
//
// OUTPUT:
//   Label IDoc Converter
//   Version:      1.0.0
//   Build Date:   2024-01-01
//   Go Version:   go1.24.0
//   Lookup Table: 153 entries
//   Fields:       62
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/label-idoc-converter/cmd.Version=1.0.0'"

// Version is the application version.
// Set at build time using ldflags.
var Version = "1.0.0"

// BuildDate is the date the application was built.
// Set at build time using ldflags.
var BuildDate = "unknown"

// =============================================================================
// VERSION COMMAND DEFINITION
// =============================================================================

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, Go runtime version and the size of the built-in tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := lookup.Default()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Label IDoc Converter")
		fmt.Fprintf(out, "Version:      %s\n", Version)
		fmt.Fprintf(out, "Build Date:   %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version:   %s\n", runtime.Version())
		fmt.Fprintf(out, "Lookup Table: %d entries\n", table.Len())
		fmt.Fprintf(out, "Fields:       %d\n", len(label.Vocabulary()))
		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
