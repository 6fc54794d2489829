// internal/charts/category.go
package charts

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
)

// MetricChartName is the file name of a category's measure-vs-factor chart.
func MetricChartName(f metrics.Factor, m metrics.Measure) string {
	return fmt.Sprintf("graphics_%s_%s.png", f, m)
}

// CurveChartName is the file name of a category's learning curve chart.
func CurveChartName(c metrics.Curve) string {
	return fmt.Sprintf("graphics_learning_curve_%s.png", c)
}

// RenderCategory writes every factor/measure chart and both learning curves of
// cat into outDir/<category name> and returns the written paths.
func (r *Renderer) RenderCategory(cat *metrics.Category, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, cat.Name)
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	var written []string
	for _, f := range metrics.Factors {
		for _, m := range metrics.Measures {
			path, err := r.metricChart(cat, f, m, dir)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}
	for _, c := range metrics.Curves {
		path, err := r.curveChart(cat, c, dir)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	logging.L().Sugar().Debugw("category charts written", "category", cat.Name, "dir", dir, "count", len(written))
	return written, nil
}

func (r *Renderer) metricChart(cat *metrics.Category, f metrics.Factor, m metrics.Measure, dir string) (string, error) {
	learn := metrics.MetricFor(metrics.Learn, m)
	test := metrics.MetricFor(metrics.Test, m)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Category %s %s-%s: learn %g - test %g",
		cat.Name, f, m, cat.Value(learn), cat.Value(test))
	p.X.Label.Text = f.String()
	p.Y.Label.Text = m.String()
	p.Add(plotter.NewGrid())

	factor := cat.RunValues(f.Metric())
	series := []struct {
		metric metrics.Metric
		col    color.Color
		shape  draw.GlyphDrawer
	}{
		{metric: learn, col: learnColor, shape: draw.PlusGlyph{}},
		{metric: test, col: testColor, shape: draw.CircleGlyph{}},
	}
	for _, s := range series {
		line, points, err := plotter.NewLinePoints(sortedPoints(factor, cat.RunValues(s.metric)))
		if err != nil {
			return "", eris.Wrapf(err, "charts: %s %s", cat.Name, s.metric)
		}
		line.Color = s.col
		points.Shape = s.shape
		points.Color = s.col
		p.Add(line, points)
		p.Legend.Add(s.metric.String(), line, points)
	}
	p.Legend.Top = true

	return save(p, r.opts.Width, r.opts.Height, dir, MetricChartName(f, m))
}

func (r *Renderer) curveChart(cat *metrics.Category, c metrics.Curve, dir string) (string, error) {
	values := cat.Curves[c]

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Category %s learning curve %s: average %g",
		cat.Name, c, cat.Value(c.Metric()))
	p.X.Label.Text = "iterations x 10^2"
	p.Y.Label.Text = c.String()
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", eris.Wrapf(err, "charts: %s curve %s", cat.Name, c)
	}
	line.Color = learnColor
	points.Shape = draw.PlusGlyph{}
	points.Color = learnColor
	p.Add(line, points)
	p.Legend.Add("learning "+c.String(), line, points)

	return save(p, r.opts.CurveWidth, r.opts.CurveHeight, dir, CurveChartName(c))
}
