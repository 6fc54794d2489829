// internal/commands/build.go
package cvreport

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/appconfig"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/charts"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/report"
)

var noRasterize bool

// buildCmd implements 'build', which parses every classifier under the input
// directory and writes the charts, the HTML table and its PNG snapshot.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render charts and the classifier comparison table",
	Long: `The 'build' command reads every classifier directory below the input directory,
draws the per-category and per-classifier charts, and writes classifiers.html
(plus classifiers.png through the rasterizer, and classifiers.xlsx on request)
to the output directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if noRasterize {
			cfg.Rasterizer.Enabled = false
		}

		res, err := report.Build(cmd.Context(), reportOptions(cfg), cmd.OutOrStdout())
		if err != nil {
			logging.L().Sugar().Errorw("build failed", "error", err)
			return err
		}

		logging.LogEvent("build finished: %d classifiers, %d charts", len(res.Classifiers), len(res.Charts))

		ok := color.New(color.FgGreen)
		ok.Fprintf(cmd.OutOrStdout(), "Table written to %s\n", res.HTMLPath)
		if res.PNGPath != "" {
			ok.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", res.PNGPath)
		}
		if res.XLSXPath != "" {
			ok.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", res.XLSXPath)
		}
		return nil
	},
}

// reportOptions maps the merged configuration onto a report run.
func reportOptions(cfg appconfig.Config) report.Options {
	opts := report.Options{
		InputDir:   cfg.InputDir,
		OutDir:     cfg.OutDir,
		NaNLiteral: cfg.NaNLiteral,
		SkipCharts: cfg.SkipCharts,
		XLSX:       cfg.XLSX,
		Charts: charts.Options{
			Width:       cfg.Chart.Width,
			Height:      cfg.Chart.Height,
			CurveWidth:  cfg.Chart.CurveWidth,
			CurveHeight: cfg.Chart.CurveHeight,
		},
		Highlight: report.Highlight{
			Primary:   cfg.Highlight.Primary,
			Secondary: cfg.Highlight.Secondary,
		},
	}
	if cfg.Rasterizer.Enabled {
		opts.Rasterizer = report.CommandRasterizer{Command: cfg.Rasterizer.Command}
	}
	return opts
}

func init() {
	buildCmd.Flags().Bool("skip-charts", false, "only build the summary table")
	buildCmd.Flags().Bool("xlsx", false, "also write classifiers.xlsx")
	buildCmd.Flags().BoolVar(&noRasterize, "no-rasterize", false, "do not convert the HTML table to PNG")

	bindBuildFlags(v)

	rootCmd.AddCommand(buildCmd)
}

func bindBuildFlags(v *viper.Viper) {
	_ = v.BindPFlag("skipCharts", buildCmd.Flags().Lookup("skip-charts"))
	_ = v.BindPFlag("xlsx", buildCmd.Flags().Lookup("xlsx"))
}
