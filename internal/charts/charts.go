// internal/charts/charts.go
// Package charts renders the per-category line charts and per-classifier bar
// charts as PNG files.
package charts

import (
	"image/color"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/util"
)

// Options sets the canvas sizes, in inches.
type Options struct {
	Width       float64
	Height      float64
	CurveWidth  float64
	CurveHeight float64
}

// DefaultOptions returns 16x8 inch metric charts and 30x8 inch learning curves.
func DefaultOptions() Options {
	return Options{Width: 16, Height: 8, CurveWidth: 30, CurveHeight: 8}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.CurveWidth <= 0 {
		o.CurveWidth = def.CurveWidth
	}
	if o.CurveHeight <= 0 {
		o.CurveHeight = def.CurveHeight
	}
	return o
}

// Renderer writes chart images below an output directory.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer; zero option fields fall back to DefaultOptions.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

var (
	learnColor = color.NRGBA{R: 31, G: 64, B: 230, A: 255}
	testColor  = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
	learnFill  = color.NRGBA{R: 0, G: 0, B: 255, A: 102}
	testFill   = color.NRGBA{R: 255, G: 0, B: 0, A: 102}
)

func ensureDir(path string) error {
	if err := util.EnsureDir(path); err != nil {
		return eris.Wrapf(err, "charts: create %s", path)
	}
	return nil
}

func save(p *plot.Plot, width, height float64, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return "", eris.Wrapf(err, "charts: save %s", path)
	}
	return path, nil
}

// sortedPoints pairs xs with ys, truncating to the shorter slice, and sorts
// by x then y.
func sortedPoints(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return pts
}
