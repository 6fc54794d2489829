// internal/commands/table.go
package cvreport

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/report"
)

var tableAll bool

// tableCmd implements 'table', which prints the comparison table to the
// terminal without writing any file.
var tableCmd = &cobra.Command{
	Use:   "table [category...]",
	Short: "Print the classifier comparison table in the terminal",
	Long: `The 'table' command parses the input directory and prints one table per
category, defaulting to the average over all categories. Nothing is written to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, table, err := report.Load(reportOptions(*GetConfig()))
		if err != nil {
			return err
		}

		categories := args
		if tableAll {
			categories = table.Rows()
		}
		for _, c := range categories {
			if !table.HasRow(c) {
				return eris.Errorf("unknown category %q", c)
			}
		}
		report.PrintSummary(cmd.OutOrStdout(), table, categories...)
		return nil
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableAll, "all", false, "print every category, not only the average")
	rootCmd.AddCommand(tableCmd)
}
