// =============================================================================
// Label IDoc Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (idoc)
//   ├── convertCmd  (idoc convert FILE...)
//   ├── templateCmd (idoc template [OUT.xlsx])
//   ├── lookupCmd   (idoc lookup VALUE...)
//   └── versionCmd  (idoc version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --log-format)
//   2. Loading the configuration file before any subcommand runs
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/label-idoc-converter/internal/config"
	"github.com/ginjaninja78/label-idoc-converter/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// logFormat overrides the configured log format.
var logFormat string

// appConfig is the loaded configuration, available to every subcommand.
var appConfig *config.Config

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "idoc",
	Short: "Label IDoc Converter - Turn label spreadsheets into IDoc segment files",
	Long: `Label IDoc Converter reads tab-delimited label spreadsheets (or .xlsx
workbooks) and writes fixed-width IDoc segment files for the label printing
system.

Each data row describes one label. The header row names the columns; any
subset of the known fields may appear, in any order.

Example Usage:
  idoc convert labels.txt                     # Writes labels_IDOC.txt
  idoc convert --extended a.txt b.txt         # Include the extended field set
  idoc template labels.xlsx                   # Start a new label workbook
  idoc lookup WECK_LOGO CE0120                # Show the graphic for a value`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logging.Setup(level, cfg.LogFormat, cmd.ErrOrStderr())

		appConfig = cfg
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		`Log format, "text" or "json" (overrides log_format)`,
	)
}
