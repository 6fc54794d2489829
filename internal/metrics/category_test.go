package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryKeepsLastRunValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catA")
	writeCategory(t, dir, []string{"0.1", "0.9", "0.4"}, []string{"1", "2", "3"})

	cat, err := NewParser("").ParseCategory(dir, 100, 0.2)
	require.NoError(t, err)

	assert.Equal(t, "catA", cat.Name)
	assert.Equal(t, 100.0, cat.PositiveCount)
	assert.Equal(t, 0.2, cat.BlurFactor)
	for _, m := range RunMetrics() {
		assert.Equal(t, 0.4, cat.Value(m), m.String())
		assert.Equal(t, []float64{0.1, 0.9, 0.4}, cat.RunValues(m), m.String())
	}
	assert.InDelta(t, 1.4/3, cat.RunMean(LearnF1), 1e-12)
}

func TestParseCategoryStoresCurveAverages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catB")
	writeCategory(t, dir, []string{"0.5"}, []string{"0.6", "0.4", "nan", "0.2"})

	cat, err := NewParser("").ParseCategory(dir, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.6, 0.4, 0, 0.2}, cat.Curves[CurveLogLoss])
	assert.InDelta(t, 0.3, cat.Value(AverageLearnLogLoss), 1e-12)
	assert.InDelta(t, 0.3, cat.Value(AverageLearnRMSE), 1e-12)
}

func TestParseCategoryMapsNaNToZero(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "lower", line: "nan"},
		{name: "negative", line: "-nan"},
		{name: "mixed case", line: "NaN"},
		{name: "padded", line: "  nan  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "cat")
			writeCategory(t, dir, []string{"0.7", tt.line}, []string{"1"})

			cat, err := NewParser("").ParseCategory(dir, 1, 1)
			require.NoError(t, err)
			assert.Equal(t, 0.0, cat.Value(TestRMSE))
			assert.Equal(t, []float64{0.7, 0}, cat.RunValues(TestRMSE))
		})
	}
}

func TestParseCategoryCustomNaNLiteral(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cat")
	writeCategory(t, dir, []string{"missing"}, []string{"1"})

	cat, err := NewParser("MISSING").ParseCategory(dir, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cat.Value(Time))
}

func TestParseCategoryErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cat")
		writeCategory(t, dir, []string{"1"}, []string{"1"})
		require.NoError(t, os.Remove(filepath.Join(dir, "model_complexity_path")))

		_, err := NewParser("").ParseCategory(dir, 1, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model_complexity_path")
	})

	t.Run("malformed line", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cat")
		writeCategory(t, dir, []string{"1"}, []string{"1"})
		writeLines(t, filepath.Join(dir, "test_f1_path"), []string{"0.5", "abc"})

		_, err := NewParser("").ParseCategory(dir, 1, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("empty curve", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cat")
		writeCategory(t, dir, []string{"1"}, nil)

		_, err := NewParser("").ParseCategory(dir, 1, 1)
		require.Error(t, err)
		assert.True(t, eris.Is(err, ErrEmptySeries))
	})
}

func TestMetricNames(t *testing.T) {
	assert.Equal(t, "learn_precision_path", MetricFor(Learn, Precision).FileName())
	assert.Equal(t, "test_rmse", MetricFor(Test, RMSE).String())
	assert.Equal(t, "learning_logloss", CurveLogLoss.FileName())
	assert.Equal(t, AverageLearnRMSE, CurveRMSE.Metric())
	assert.Equal(t, ModelComplexity, FactorModelComplexity.Metric())
	assert.Len(t, AllMetrics(), 14)
	assert.Len(t, RunMetrics(), 12)
	for _, m := range RunMetrics() {
		assert.True(t, m.PerRun(), m.String())
	}
	assert.False(t, AverageLearnLogLoss.PerRun())
}
