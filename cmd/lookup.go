package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
)

// lookupCmd resolves characteristic values the way the converter does.
var lookupCmd = &cobra.Command{
	Use:   "lookup [VALUE...]",
	Short: "Show the graphic file for characteristic values",
	Long: `The lookup command prints the graphic file each VALUE resolves to. Values
missing from the table fall back to the value itself. Without arguments the
whole table is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := lookup.Default()
		if err != nil {
			return fmt.Errorf("characteristic lookup table is invalid: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		if len(args) == 0 {
			for _, e := range table.Entries() {
				fmt.Fprintf(w, "%s\t%s%s\n", e.Key, e.Asset, lookup.AssetExt)
			}
			return w.Flush()
		}

		for _, value := range args {
			source := "table"
			if _, ok := table.Find(value); !ok {
				source = "fallback"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", value, table.Asset(value), source)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
