package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCategory creates a category directory where every per-run metric file
// holds runValues and both learning curves hold curveValues.
func writeCategory(t *testing.T, dir string, runValues, curveValues []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, m := range RunMetrics() {
		writeLines(t, filepath.Join(dir, m.FileName()), runValues)
	}
	for _, c := range Curves {
		writeLines(t, filepath.Join(dir, c.FileName()), curveValues)
	}
}

func writeLines(t *testing.T, path string, lines []string) {
	t.Helper()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
