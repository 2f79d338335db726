// =============================================================================
// Label IDoc Converter - Template Command
// =============================================================================
//
// This file defines the 'template' command, which writes an empty label
// workbook whose header row the converter understands.
//
// COMMAND USAGE:
//   idoc template [OUT.xlsx] [--extended]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/internal/workbook"
)

// DefaultTemplateFile is written when no file name is given.
const DefaultTemplateFile = "label_template.xlsx"

var templateExtended bool

var templateCmd = &cobra.Command{
	Use:   "template [OUT.xlsx]",
	Short: "Write an empty label workbook",
	Long: `The template command writes an .xlsx workbook with three sheets:

  Labels  the header row of every known field, in output order
  Fields  the accepted header spellings, kind and capacity of every field
  Lookup  the graphic file of every known characteristic value

Fill in the Labels sheet and convert the workbook directly, or export it as
tab-delimited text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := DefaultTemplateFile
		if len(args) == 1 {
			out = args[0]
		}

		table, err := lookup.Default()
		if err != nil {
			return fmt.Errorf("characteristic lookup table is invalid: %w", err)
		}

		f, err := workbook.NewTemplate(templateExtended || appConfig.ExtendedFields, table)
		if err != nil {
			return fmt.Errorf("failed to build template: %w", err)
		}
		defer f.Close()

		if err := f.SaveAs(out); err != nil {
			return fmt.Errorf("failed to write template: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().BoolVar(&templateExtended, "extended", false, "Include the extended field set")
}
