package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
)

func sampleCategory(name string, volume, blur float64) *metrics.Category {
	cat := &metrics.Category{
		Name:          name,
		PositiveCount: volume,
		BlurFactor:    blur,
		Runs:          make(map[metrics.Metric][]float64),
		Curves:        make(map[metrics.Curve][]float64),
	}
	for _, m := range metrics.RunMetrics() {
		cat.Runs[m] = []float64{0.3, 0.1, 0.2}
		cat.Scalars[m] = 0.2
	}
	for _, c := range metrics.Curves {
		cat.Curves[c] = []float64{0.9, 0.5, 0.4, 0.35}
		cat.Scalars[c.Metric()] = 0.5375
	}
	return cat
}

func smallRenderer() *Renderer {
	return NewRenderer(Options{Width: 4, Height: 3, CurveWidth: 5, CurveHeight: 3})
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, path)
	assert.Greater(t, info.Size(), int64(0), path)
}

func TestSortedPoints(t *testing.T) {
	pts := sortedPoints([]float64{3, 1, 2, 1, 9}, []float64{30, 12, 20, 10})
	assert.Equal(t, plotter.XYs{{X: 1, Y: 10}, {X: 1, Y: 12}, {X: 2, Y: 20}, {X: 3, Y: 30}}, pts)
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(Options{Width: 10})
	assert.Equal(t, 10.0, r.opts.Width)
	assert.Equal(t, DefaultOptions().Height, r.opts.Height)
	assert.Equal(t, DefaultOptions().CurveWidth, r.opts.CurveWidth)
}

func TestRenderCategoryWritesAllCharts(t *testing.T) {
	out := t.TempDir()
	written, err := smallRenderer().RenderCategory(sampleCategory("catA", 100, 0.2), out)
	require.NoError(t, err)
	require.Len(t, written, len(metrics.Factors)*len(metrics.Measures)+len(metrics.Curves))

	assertNonEmptyFile(t, filepath.Join(out, "catA", "graphics_time_f1.png"))
	assertNonEmptyFile(t, filepath.Join(out, "catA", "graphics_model_complexity_rmse.png"))
	assertNonEmptyFile(t, filepath.Join(out, "catA", "graphics_learning_curve_logloss.png"))
	assertNonEmptyFile(t, filepath.Join(out, "catA", "graphics_learning_curve_rmse.png"))
}

func TestRenderClassifierWritesBarsAndCategories(t *testing.T) {
	out := t.TempDir()
	cls := &metrics.Classifier{
		Name: "boost",
		Categories: []*metrics.Category{
			sampleCategory("catA", 100, 0.2),
			sampleCategory("catB", 300, 0.1),
		},
	}

	written, err := smallRenderer().RenderClassifier(cls, out)
	require.NoError(t, err)
	perCategory := len(metrics.Factors)*len(metrics.Measures) + len(metrics.Curves)
	assert.Len(t, written, 2*perCategory+len(metrics.Measures)*len(metrics.GroupFactors))

	assertNonEmptyFile(t, filepath.Join(out, "boost", "catB", "graphics_time_accuracy.png"))
	assertNonEmptyFile(t, filepath.Join(out, "boost", "graphic_average_boost_f1_volume.png"))
	assertNonEmptyFile(t, filepath.Join(out, "boost", "graphic_average_boost_complete_blur_factor.png"))
}

func TestRenderClassifierWithoutCategories(t *testing.T) {
	written, err := smallRenderer().RenderClassifier(&metrics.Classifier{Name: "empty"}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestBarLabelsFollowOrdering(t *testing.T) {
	cls := &metrics.Classifier{Categories: []*metrics.Category{
		sampleCategory("catA", 100, 0.2),
		sampleCategory("catB", 300, 0.1),
		sampleCategory("catC", 100, 0.5),
	}}

	assert.Equal(t, []string{"catB:300", "catA:100", "catC:100"}, BarLabels(cls.OrderedBy(metrics.ByVolume), metrics.ByVolume))
	assert.Equal(t, []string{"catC:0.5", "catA:0.2", "catB:0.1"}, BarLabels(cls.OrderedBy(metrics.ByBlurFactor), metrics.ByBlurFactor))
}

func TestValueLabelsAreCenteredOnBars(t *testing.T) {
	labels, err := valueLabels(plotter.Values{0.5, 2}, barWidth/2)
	require.NoError(t, err)

	assert.Equal(t, []string{"0.500000", "2.000000"}, labels.Labels)
	assert.Equal(t, barWidth/2, labels.Offset.X)
	require.Len(t, labels.TextStyle, 2)
	for _, style := range labels.TextStyle {
		assert.Equal(t, draw.XCenter, style.XAlign)
	}
	assert.InDelta(t, 0.0, labels.XYs[0].X, 1e-12)
	assert.InDelta(t, 2.1, labels.XYs[1].Y, 1e-12)
}
