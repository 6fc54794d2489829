// internal/charts/classifier.go
package charts

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
	"github.com/DmitriyKonyrev/ml-cross-validator/internal/util"
)

const (
	barWidth      = vg.Length(24)
	maxLabelRunes = 24
)

// BarChartName is the file name of a classifier's grouped bar chart.
func BarChartName(classifier string, m metrics.Measure, g metrics.GroupFactor) string {
	return fmt.Sprintf("graphic_average_%s_%s_%s.png", classifier, m, g)
}

// RenderClassifier writes the charts of every category of cls and then one
// grouped learn/test bar chart per measure and group factor, all under
// outDir/<classifier name>.
func (r *Renderer) RenderClassifier(cls *metrics.Classifier, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, cls.Name)
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	var written []string
	for _, cat := range cls.Categories {
		paths, err := r.RenderCategory(cat, dir)
		written = append(written, paths...)
		if err != nil {
			return written, eris.Wrapf(err, "charts: classifier %s", cls.Name)
		}
	}

	if len(cls.Categories) == 0 {
		logging.L().Sugar().Warnw("classifier has no categories, skipping bar charts", "classifier", cls.Name)
		return written, nil
	}
	for _, m := range metrics.Measures {
		for _, g := range metrics.GroupFactors {
			path, err := r.barChart(cls, m, g, dir)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	logging.L().Sugar().Infow("classifier charts written", "classifier", cls.Name, "dir", dir, "count", len(written))
	return written, nil
}

// BarLabels returns the x tick labels of a bar chart in bar order.
func BarLabels(cats []*metrics.Category, g metrics.GroupFactor) []string {
	labels := make([]string, len(cats))
	for i, cat := range cats {
		labels[i] = fmt.Sprintf("%s:%g", util.TruncateRunes(cat.Name, maxLabelRunes), cat.GroupValue(g))
	}
	return labels
}

func (r *Renderer) barChart(cls *metrics.Classifier, m metrics.Measure, g metrics.GroupFactor, dir string) (string, error) {
	ordered := cls.OrderedBy(g)
	learnMetric := metrics.MetricFor(metrics.Learn, m)
	testMetric := metrics.MetricFor(metrics.Test, m)

	learn := make(plotter.Values, len(ordered))
	test := make(plotter.Values, len(ordered))
	for i, cat := range ordered {
		learn[i] = cat.Value(learnMetric)
		test[i] = cat.Value(testMetric)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Classifier %s average %s by %s", cls.Name, m, g)
	p.X.Label.Text = fmt.Sprintf("categories %s", g)
	p.Y.Label.Text = m.String()
	p.Legend.Top = true

	bars := []struct {
		name   string
		values plotter.Values
		offset vg.Length
		fill   color.Color
	}{
		{name: "learn", values: learn, offset: -barWidth / 2, fill: learnFill},
		{name: "test", values: test, offset: barWidth / 2, fill: testFill},
	}
	for _, b := range bars {
		chart, err := plotter.NewBarChart(b.values, barWidth)
		if err != nil {
			return "", eris.Wrapf(err, "charts: %s %s bars", cls.Name, b.name)
		}
		chart.Color = b.fill
		chart.LineStyle.Width = vg.Length(0)
		chart.Offset = b.offset
		p.Add(chart)
		p.Legend.Add(b.name, chart)

		labels, err := valueLabels(b.values, b.offset)
		if err != nil {
			return "", eris.Wrapf(err, "charts: %s %s labels", cls.Name, b.name)
		}
		p.Add(labels)
	}

	p.NominalX(BarLabels(ordered, g)...)
	p.X.Tick.Label.Rotation = math.Pi / 8
	p.Y.Min = math.Min(0, p.Y.Min)
	p.Y.Max *= 1.15

	return save(p, r.opts.Width, r.opts.Height, dir, BarChartName(cls.Name, m, g))
}

// valueLabels prints each bar's value centered just above it.
func valueLabels(values plotter.Values, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = 1.05 * v
		texts[i] = fmt.Sprintf("%f", v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Length(2)}
	return labels, nil
}
