// internal/report/report.go
// Package report drives a full run: parse every classifier, draw the charts,
// build the summary table and write it as HTML, PNG and optionally XLSX.
package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/charts"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/util"
)

// Output file names, written directly under the output directory.
const (
	HTMLFile = "classifiers.html"
	PNGFile  = "classifiers.png"
	XLSXFile = "classifiers.xlsx"
)

// Options captures the inputs of a report run.
type Options struct {
	InputDir   string
	OutDir     string
	NaNLiteral string
	SkipCharts bool
	XLSX       bool
	Charts     charts.Options
	Highlight  Highlight
	// Rasterizer is skipped when nil.
	Rasterizer Rasterizer
}

// Result lists what a run produced.
type Result struct {
	Classifiers []*metrics.Classifier
	Table       *metrics.Table
	Charts      []string
	HTMLPath    string
	PNGPath     string
	XLSXPath    string
}

// Load parses every classifier under opts.InputDir and builds the summary
// table without writing anything.
func Load(opts Options) ([]*metrics.Classifier, *metrics.Table, error) {
	parser := metrics.NewParser(opts.NaNLiteral)
	classifiers, err := parser.Discover(opts.InputDir, opts.OutDir)
	if err != nil {
		return nil, nil, err
	}
	return classifiers, metrics.BuildTable(classifiers), nil
}

// Build runs the whole pipeline sequentially and stops at the first error.
func Build(ctx context.Context, opts Options, out io.Writer) (*Result, error) {
	log := logging.L().Sugar()
	if err := util.EnsureDir(opts.OutDir); err != nil {
		return nil, eris.Wrap(err, "report: output directory")
	}

	classifiers, table, err := Load(opts)
	if err != nil {
		return nil, err
	}
	res := &Result{Classifiers: classifiers, Table: table}

	if !opts.SkipCharts {
		renderer := charts.NewRenderer(opts.Charts)
		for _, cls := range classifiers {
			log.Infof("process classifier %s data", cls.Name)
			paths, err := renderer.RenderClassifier(cls, opts.OutDir)
			res.Charts = append(res.Charts, paths...)
			if err != nil {
				return nil, err
			}
		}
	}

	log.Info("build result table")
	html, err := RenderHTML(table, opts.Highlight)
	if err != nil {
		return nil, eris.Wrap(err, "report: render HTML")
	}
	res.HTMLPath = filepath.Join(opts.OutDir, HTMLFile)
	if err := util.WriteFile(res.HTMLPath, []byte(html)); err != nil {
		return nil, eris.Wrapf(err, "report: write %s", res.HTMLPath)
	}
	log.Infow("table written", "path", res.HTMLPath, "size", humanize.Bytes(uint64(len(html))))

	if opts.XLSX {
		res.XLSXPath = filepath.Join(opts.OutDir, XLSXFile)
		if err := WriteXLSX(res.XLSXPath, table, classifiers); err != nil {
			return nil, err
		}
		log.Infow("workbook written", "path", res.XLSXPath)
	}

	if opts.Rasterizer != nil {
		res.PNGPath = filepath.Join(opts.OutDir, PNGFile)
		if err := opts.Rasterizer.Rasterize(ctx, res.HTMLPath, res.PNGPath); err != nil {
			return nil, err
		}
	}

	PrintSummary(out, table)
	fmt.Fprintf(out, "%d classifiers, %d categories, %d charts\n",
		len(classifiers), len(table.Categories), len(res.Charts))
	return res, nil
}
