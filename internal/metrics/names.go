// internal/metrics/names.go
package metrics

import "fmt"

// Split identifies which side of a cross-validation fold a value was measured on.
type Split int

const (
	Learn Split = iota
	Test
)

var splitNames = [...]string{"learn", "test"}

func (s Split) String() string { return splitNames[s] }

// Splits lists both splits in file order.
var Splits = []Split{Learn, Test}

// Measure is a quality measure recorded for both splits.
type Measure int

const (
	F1 Measure = iota
	Precision
	Complete
	Accuracy
	RMSE
)

var measureNames = [...]string{"f1", "precision", "complete", "accuracy", "rmse"}

func (m Measure) String() string { return measureNames[m] }

// Measures lists every measure in chart order.
var Measures = []Measure{F1, Precision, Complete, Accuracy, RMSE}

// Factor is an independent per-run variable a category measure is plotted against.
type Factor int

const (
	FactorTime Factor = iota
	FactorModelComplexity
)

var factorNames = [...]string{"time", "model_complexity"}

func (f Factor) String() string { return factorNames[f] }

// Metric returns the per-run metric holding the factor values.
func (f Factor) Metric() Metric {
	if f == FactorTime {
		return Time
	}
	return ModelComplexity
}

// Factors lists the category chart factors.
var Factors = []Factor{FactorTime, FactorModelComplexity}

// GroupFactor orders the categories of a classifier in its bar charts.
type GroupFactor int

const (
	ByVolume GroupFactor = iota
	ByBlurFactor
)

var groupFactorNames = [...]string{"volume", "blur_factor"}

func (g GroupFactor) String() string { return groupFactorNames[g] }

// GroupFactors lists the classifier chart factors.
var GroupFactors = []GroupFactor{ByVolume, ByBlurFactor}

// Curve names a per-iteration learning curve.
type Curve int

const (
	CurveLogLoss Curve = iota
	CurveRMSE
)

var curveNames = [...]string{"logloss", "rmse"}

func (c Curve) String() string { return curveNames[c] }

// FileName is the curve's input file inside a category directory.
func (c Curve) FileName() string { return "learning_" + c.String() }

// Metric returns the scalar that stores the curve average.
func (c Curve) Metric() Metric {
	if c == CurveLogLoss {
		return AverageLearnLogLoss
	}
	return AverageLearnRMSE
}

// Curves lists both learning curves.
var Curves = []Curve{CurveLogLoss, CurveRMSE}

// Metric is one of the fixed scalars tracked per category, in report order.
type Metric int

const (
	LearnF1 Metric = iota
	TestF1
	LearnPrecision
	TestPrecision
	LearnComplete
	TestComplete
	LearnAccuracy
	TestAccuracy
	LearnRMSE
	TestRMSE
	AverageLearnLogLoss
	AverageLearnRMSE
	Time
	ModelComplexity

	NumMetrics
)

var metricNames = [NumMetrics]string{
	"learn_f1", "test_f1",
	"learn_precision", "test_precision",
	"learn_complete", "test_complete",
	"learn_accuracy", "test_accuracy",
	"learn_rmse", "test_rmse",
	"average_learn_logloss",
	"average_learn_rmse",
	"time",
	"model_complexity",
}

func (m Metric) String() string {
	if m < 0 || m >= NumMetrics {
		return fmt.Sprintf("metric(%d)", int(m))
	}
	return metricNames[m]
}

// PerRun reports whether the metric is read from a one-value-per-run file.
func (m Metric) PerRun() bool {
	return m != AverageLearnLogLoss && m != AverageLearnRMSE
}

// FileName is the metric's input file inside a category directory.
func (m Metric) FileName() string { return m.String() + "_path" }

// MetricFor maps a split and measure to its metric.
func MetricFor(s Split, m Measure) Metric {
	return Metric(int(m)*2 + int(s))
}

// AllMetrics returns every metric in report order.
func AllMetrics() []Metric {
	out := make([]Metric, 0, NumMetrics)
	for m := Metric(0); m < NumMetrics; m++ {
		out = append(out, m)
	}
	return out
}

// RunMetrics returns the per-run metrics in the order their files are read.
func RunMetrics() []Metric {
	out := make([]Metric, 0, NumMetrics-2)
	for _, s := range Splits {
		for _, m := range Measures {
			out = append(out, MetricFor(s, m))
		}
	}
	return append(out, ModelComplexity, Time)
}
