package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClassifier(t *testing.T, dir string, manifest []string, runValues map[string][]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeLines(t, filepath.Join(dir, ManifestFile), manifest)
	for _, line := range manifest {
		name := strings.Split(line, "\t")[0]
		values := runValues[name]
		if values == nil {
			values = []string{"0.5"}
		}
		writeCategory(t, filepath.Join(dir, name), values, []string{"1", "2"})
	}
}

func TestReadManifest(t *testing.T) {
	entries, err := ReadManifest(strings.NewReader("catA\t100\t0.2\ncatB\t7.5\t1\ncatA\t3\t0\n"))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ManifestEntry{Category: "catA", Volume: 100, Blur: 0.2}, entries[0])
	assert.Equal(t, ManifestEntry{Category: "catB", Volume: 7.5, Blur: 1}, entries[1])
	assert.Equal(t, "catA", entries[2].Category)
}

func TestReadManifestTrimsPaddedFields(t *testing.T) {
	entries, err := ReadManifest(strings.NewReader("catA\t100\t0.2 \n catB \t 7.5\t1\r\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ManifestEntry{Category: "catA", Volume: 100, Blur: 0.2}, entries[0])
	assert.Equal(t, ManifestEntry{Category: "catB", Volume: 7.5, Blur: 1}, entries[1])
}

func TestReadManifestRejectsMalformedLines(t *testing.T) {
	for name, input := range map[string]string{
		"too few fields": "catA\t100\n",
		"bad volume":     "catA\tmany\t0.2\n",
		"bad blur":       "catA\t100\tx\n",
		"empty name":     "\t100\t0.2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadManifest(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrMalformedManifest))
		})
	}
}

func TestParseClassifierFollowsManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boost")
	writeClassifier(t, dir, []string{"catB\t10\t0.5", "catA\t100\t0.2"}, nil)

	cls, err := NewParser("").ParseClassifier(dir)
	require.NoError(t, err)
	assert.Equal(t, "boost", cls.Name)
	require.Len(t, cls.Categories, 2)
	assert.Equal(t, "catB", cls.Categories[0].Name)
	assert.Equal(t, "catA", cls.Categories[1].Name)
	assert.Equal(t, 100.0, cls.Categories[1].PositiveCount)
	assert.Equal(t, 0.2, cls.Categories[1].BlurFactor)
}

func TestParseClassifierMissingManifest(t *testing.T) {
	_, err := NewParser("").ParseClassifier(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ManifestFile)
}

func TestOrderedByIsStableDescending(t *testing.T) {
	cls := &Classifier{Categories: []*Category{
		{Name: "a", PositiveCount: 300, BlurFactor: 0.1},
		{Name: "b", PositiveCount: 200, BlurFactor: 0.3},
		{Name: "c", PositiveCount: 200, BlurFactor: 0.3},
		{Name: "d", PositiveCount: 100, BlurFactor: 0.2},
	}}

	names := func(cats []*Category) []string {
		var out []string
		for _, c := range cats {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, names(cls.OrderedBy(ByVolume)))
	assert.Equal(t, []string{"b", "c", "d", "a"}, names(cls.OrderedBy(ByBlurFactor)))
	assert.Equal(t, "a", cls.Categories[0].Name, "source order must be untouched")
}

func TestDiscoverSortsAndSkips(t *testing.T) {
	root := t.TempDir()
	writeClassifier(t, filepath.Join(root, "zeta"), []string{"catA\t1\t1"}, nil)
	writeClassifier(t, filepath.Join(root, "alpha"), []string{"catA\t1\t1"}, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "graphics"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	classifiers, err := NewParser("").Discover(root, filepath.Join(root, "graphics"))
	require.NoError(t, err)
	require.Len(t, classifiers, 2)
	assert.Equal(t, "alpha", classifiers[0].Name)
	assert.Equal(t, "zeta", classifiers[1].Name)
}

func TestDiscoverEmpty(t *testing.T) {
	_, err := NewParser("").Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNoClassifiers))
}
