package metrics

import "github.com/rotisserie/eris"

var (
	// ErrEmptySeries is returned when a metric or curve file holds no values.
	ErrEmptySeries = eris.New("metrics: file holds no values")
	// ErrMalformedManifest is returned for manifest lines that are not category/volume/blur triples.
	ErrMalformedManifest = eris.New("metrics: malformed manifest line")
	// ErrNoClassifiers is returned when the input directory has no classifier directories.
	ErrNoClassifiers = eris.New("metrics: no classifier directories found")
)
