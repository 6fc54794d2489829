// internal/metrics/classifier.go
package metrics

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
)

// ManifestFile lists the categories of a classifier directory.
const ManifestFile = "categories_data"

// Classifier is a named set of categories in manifest order.
type Classifier struct {
	Name       string
	Path       string
	Categories []*Category
}

// ManifestEntry is one tab-separated line of a classifier manifest.
type ManifestEntry struct {
	Category string  `csv:"category"`
	Volume   float64 `csv:"volume"`
	Blur     float64 `csv:"blur"`
}

// ReadManifest decodes category/volume/blur triples in file order.
// Duplicate categories are kept as separate entries.
func ReadManifest(r io.Reader) ([]ManifestEntry, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = 3
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(trimmedReader{reader}, "category", "volume", "blur")
	if err != nil {
		return nil, eris.Wrap(err, "metrics: manifest decoder")
	}

	var entries []ManifestEntry
	for record := 1; ; record++ {
		var entry ManifestEntry
		if err := dec.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, eris.Wrapf(ErrMalformedManifest, "record %d: %v", record, err)
		}
		if entry.Category == "" {
			return nil, eris.Wrapf(ErrMalformedManifest, "record %d: empty category name", record)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// trimmedReader strips surrounding whitespace from every field.
type trimmedReader struct {
	r *csv.Reader
}

func (t trimmedReader) Read() ([]string, error) {
	record, err := t.r.Read()
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, err
}

// ParseClassifier reads the manifest of dir and parses each listed category.
func (p Parser) ParseClassifier(dir string) (*Classifier, error) {
	manifestPath := filepath.Join(dir, ManifestFile)
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, eris.Wrapf(err, "metrics: open manifest %s", manifestPath)
	}
	defer file.Close()

	entries, err := ReadManifest(file)
	if err != nil {
		return nil, eris.Wrapf(err, "metrics: %s", manifestPath)
	}

	cls := &Classifier{
		Name:       filepath.Base(dir),
		Path:       dir,
		Categories: make([]*Category, 0, len(entries)),
	}
	for _, entry := range entries {
		cat, err := p.ParseCategory(filepath.Join(dir, entry.Category), entry.Volume, entry.Blur)
		if err != nil {
			return nil, eris.Wrapf(err, "metrics: classifier %s category %s", cls.Name, entry.Category)
		}
		cls.Categories = append(cls.Categories, cat)
	}
	return cls, nil
}

// OrderedBy returns the categories sorted by descending group value. Ties keep
// manifest order.
func (c *Classifier) OrderedBy(g GroupFactor) []*Category {
	ordered := make([]*Category, len(c.Categories))
	copy(ordered, c.Categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].GroupValue(g) > ordered[j].GroupValue(g)
	})
	return ordered
}

// Discover parses every classifier directory directly under inputDir, sorted by
// name. Hidden entries, plain files and any path listed in skip are ignored.
func (p Parser) Discover(inputDir string, skip ...string) ([]*Classifier, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, eris.Wrapf(err, "metrics: list %s", inputDir)
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		if abs, err := filepath.Abs(s); err == nil {
			skipped[abs] = struct{}{}
		}
	}

	var classifiers []*Classifier
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(inputDir, entry.Name())
		if abs, err := filepath.Abs(dir); err == nil {
			if _, ok := skipped[abs]; ok {
				continue
			}
		}
		logging.L().Sugar().Infof("read data of %s", entry.Name())
		cls, err := p.ParseClassifier(dir)
		if err != nil {
			return nil, err
		}
		classifiers = append(classifiers, cls)
	}

	if len(classifiers) == 0 {
		return nil, eris.Wrapf(ErrNoClassifiers, "metrics: %s", inputDir)
	}
	return classifiers, nil
}
