// =============================================================================
// Label IDoc Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command of the tool.
//
// COMMAND USAGE:
//   idoc convert [flags] FILE...
//
// FLAGS:
//   --graphics-path   : Directory prefix of every graphic asset
//   --extended        : Include the extended field set
//   --control-number  : 7-character control number
//   --dry-run         : Build every document but write nothing
//   --warning-log     : Write <output>.warnings.txt for documents with issues
//
// PROCESSING:
//   Every FILE is an independent document with its own sequence numbers.
//   Files are converted concurrently, at most max_concurrency at a time.
//   A failing file never affects the others, but makes the command exit 1.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ginjaninja78/label-idoc-converter/internal/config"
	"github.com/ginjaninja78/label-idoc-converter/internal/converter"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	graphicsPath  string
	extended      bool
	controlNumber string
	dryRun        bool
	warningLog    bool
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert label spreadsheets into IDoc files",
	Long: `The convert command converts each FILE into an IDoc file written next to
it, named after the input with its extension replaced by output_suffix
(default "_IDOC.txt").

FILE may be a tab-delimited text file, an .xlsx workbook (its first sheet is
read) or a storage URL.

A document with an invalid label identifier or a missing template number is
not written at all. Recoverable problems (bad revisions, barcode check digit
mismatches, truncated values) are logged and listed in the summary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := convertConfig(cmd)
		if err != nil {
			return err
		}
		return runConvert(cmd, cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&graphicsPath, "graphics-path", "", "Directory prefix of graphic assets (overrides graphics_path)")
	convertCmd.Flags().BoolVar(&extended, "extended", false, "Include the extended field set (overrides extended_fields)")
	convertCmd.Flags().StringVar(&controlNumber, "control-number", "", "7-character control number (overrides control_number)")
	convertCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build the documents without writing any file")
	convertCmd.Flags().BoolVar(&warningLog, "warning-log", false, "Write a warnings log next to each output (overrides warning_log)")
}

// convertConfig applies the command line flags on top of the configuration.
func convertConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := *appConfig
	flags := cmd.Flags()

	if flags.Changed("graphics-path") {
		cfg.GraphicsPath = graphicsPath
	}
	if flags.Changed("extended") {
		cfg.ExtendedFields = extended
	}
	if flags.Changed("control-number") {
		cfg.ControlNumber = controlNumber
	}
	if flags.Changed("warning-log") {
		cfg.WarningLog = warningLog
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runConvert(cmd *cobra.Command, cfg *config.Config, inputs []string) error {
	table, err := lookup.Default()
	if err != nil {
		return fmt.Errorf("characteristic lookup table is invalid: %w", err)
	}

	conv := converter.New(cfg, table, converter.Options{DryRun: dryRun})
	summary := utils.ProcessingSummary{StartTime: time.Now(), DryRun: dryRun}

	// =========================================================================
	// PROCESS FILES CONCURRENTLY
	// =========================================================================
	// Each result goes into its own slot, so no locking is needed and the
	// summary keeps the command line order.

	results := make([]converter.Result, len(inputs))

	g, ctx := errgroup.WithContext(background(cmd))
	g.SetLimit(cfg.MaxConcurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			results[i] = conv.Run(ctx, input)
			return nil
		})
	}
	g.Wait()

	// =========================================================================
	// SUMMARY
	// =========================================================================

	summary.EndTime = time.Now()
	for _, r := range results {
		if !r.Success {
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    r.FilePath,
				RunID:        r.RunID,
				ErrorMessage: r.Error.Error(),
			})
			continue
		}
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   r.FilePath,
			OutputFile:  r.OutputFile,
			RunID:       r.RunID,
			Rows:        r.Stats.Rows,
			Records:     r.Stats.Records,
			Segments:    r.Stats.Segments,
			Warnings:    r.Stats.Warnings + r.Stats.Skipped,
			Fingerprint: r.Stats.Fingerprint,
			ProcessTime: r.Stats.ProcessingTime,
		})
	}

	if err := utils.WriteSummary(cmd.OutOrStdout(), summary); err != nil {
		return err
	}

	if n := len(summary.FailedFilesList); n > 0 {
		return fmt.Errorf("%d of %d file(s) failed", n, len(inputs))
	}
	return nil
}

// background is used when a command runs without a context.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
