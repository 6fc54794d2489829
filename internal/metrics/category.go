// internal/metrics/category.go
package metrics

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
)

// DefaultNaNLiteral is the marker a metric line carries when the value was not a number.
const DefaultNaNLiteral = "nan"

// Category holds every metric parsed from one category directory.
type Category struct {
	Name          string
	Path          string
	PositiveCount float64
	BlurFactor    float64

	// Scalars is indexed by Metric. Per-run metrics hold the last value read;
	// curve averages hold the mean of their curve.
	Scalars [NumMetrics]float64
	Runs    map[Metric][]float64
	Curves  map[Curve][]float64
}

// Value returns the scalar stored for m.
func (c *Category) Value(m Metric) float64 { return c.Scalars[m] }

// RunValues returns the per-run sequence of m in file order.
func (c *Category) RunValues(m Metric) []float64 { return c.Runs[m] }

// RunMean is the arithmetic mean of the per-run values of m.
func (c *Category) RunMean(m Metric) float64 { return mean(c.Runs[m]) }

// GroupValue returns the manifest factor used to order categories in bar charts.
func (c *Category) GroupValue(g GroupFactor) float64 {
	if g == ByVolume {
		return c.PositiveCount
	}
	return c.BlurFactor
}

// Parser reads category and classifier directories.
type Parser struct {
	// NaNLiteral marks a line as not-a-number; it is matched case-insensitively
	// anywhere in the line and the value becomes 0.
	NaNLiteral string
}

// NewParser returns a Parser using the given marker, or DefaultNaNLiteral when empty.
// Matching ignores case, so "NaN", "-nan" and "NAN" all read as 0.
func NewParser(nanLiteral string) Parser {
	if strings.TrimSpace(nanLiteral) == "" {
		nanLiteral = DefaultNaNLiteral
	}
	return Parser{NaNLiteral: strings.ToLower(strings.TrimSpace(nanLiteral))}
}

// ParseCategory reads every fixed metric file and both learning curves in dir.
// Any missing, empty or malformed file fails the whole category.
func (p Parser) ParseCategory(dir string, positiveCount, blurFactor float64) (*Category, error) {
	cat := &Category{
		Name:          filepath.Base(dir),
		Path:          dir,
		PositiveCount: positiveCount,
		BlurFactor:    blurFactor,
		Runs:          make(map[Metric][]float64, NumMetrics),
		Curves:        make(map[Curve][]float64, len(Curves)),
	}

	for _, m := range RunMetrics() {
		values, err := p.readValues(filepath.Join(dir, m.FileName()))
		if err != nil {
			return nil, err
		}
		cat.Runs[m] = values
		cat.Scalars[m] = values[len(values)-1]
	}

	for _, c := range Curves {
		values, err := p.readValues(filepath.Join(dir, c.FileName()))
		if err != nil {
			return nil, err
		}
		cat.Curves[c] = values
		cat.Scalars[c.Metric()] = mean(values)
	}

	logging.L().Sugar().Debugw("parsed category",
		"category", cat.Name,
		"runs", len(cat.Runs[Time]),
		"iterations", len(cat.Curves[CurveLogLoss]),
	)
	return cat, nil
}

// readValues parses one value per line.
func (p Parser) readValues(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "metrics: open %s", path)
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		value, err := p.parseValue(scanner.Text())
		if err != nil {
			return nil, eris.Wrapf(err, "metrics: %s line %d", path, lineNo)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "metrics: read %s", path)
	}
	if len(values) == 0 {
		return nil, eris.Wrapf(ErrEmptySeries, "metrics: %s", path)
	}
	return values, nil
}

func (p Parser) parseValue(line string) (float64, error) {
	text := strings.TrimSpace(line)
	if p.NaNLiteral != "" && strings.Contains(strings.ToLower(text), p.NaNLiteral) {
		return 0, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse value %q", text)
	}
	return value, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
