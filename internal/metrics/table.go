// internal/metrics/table.go
package metrics

import "sort"

// AverageRow is the pseudo-category holding per-classifier means.
const AverageRow = "average"

// Cell is one classifier's value for a (category, metric) pair. Present is
// false when the classifier has no such category.
type Cell struct {
	Value   float64
	Present bool
}

// Mark is the highlight assigned to a cell when the table is rendered.
type Mark int

const (
	MarkNone Mark = iota
	MarkBest
	MarkRunnerUp
)

// Table is the category x metric summary with one column per classifier.
type Table struct {
	Classifiers []string
	// Categories excludes AverageRow and keeps first-seen order.
	Categories []string

	rows map[string]*[NumMetrics][]Cell
}

// BuildTable fills the summary from parsed classifiers. Category rows are the
// union over all classifiers. For duplicated category names the later entry
// owns the cell, while every entry counts toward the classifier average.
func BuildTable(classifiers []*Classifier) *Table {
	t := &Table{rows: make(map[string]*[NumMetrics][]Cell)}
	for _, cls := range classifiers {
		t.Classifiers = append(t.Classifiers, cls.Name)
	}
	t.row(AverageRow)

	for col, cls := range classifiers {
		var sums [NumMetrics]float64
		for _, cat := range cls.Categories {
			if _, ok := t.rows[cat.Name]; !ok {
				t.Categories = append(t.Categories, cat.Name)
			}
			row := t.row(cat.Name)
			for m := Metric(0); m < NumMetrics; m++ {
				value := cat.Value(m)
				row[m][col] = Cell{Value: value, Present: true}
				sums[m] += value
			}
		}
		if n := len(cls.Categories); n > 0 {
			avg := t.rows[AverageRow]
			for m := Metric(0); m < NumMetrics; m++ {
				avg[m][col] = Cell{Value: sums[m] / float64(n), Present: true}
			}
		}
	}
	return t
}

func (t *Table) row(category string) *[NumMetrics][]Cell {
	if row, ok := t.rows[category]; ok {
		return row
	}
	row := new([NumMetrics][]Cell)
	for m := range row {
		row[m] = make([]Cell, len(t.Classifiers))
	}
	t.rows[category] = row
	return row
}

// Rows returns AverageRow followed by the category rows.
func (t *Table) Rows() []string {
	return append([]string{AverageRow}, t.Categories...)
}

// HasRow reports whether category is AverageRow or a parsed category.
func (t *Table) HasRow(category string) bool {
	_, ok := t.rows[category]
	return ok
}

// Cells returns the per-classifier cells of one (category, metric) pair.
func (t *Table) Cells(category string, m Metric) []Cell {
	row, ok := t.rows[category]
	if !ok {
		return make([]Cell, len(t.Classifiers))
	}
	return row[m]
}

// Cell returns a single cell by classifier name.
func (t *Table) Cell(category string, m Metric, classifier string) Cell {
	for col, name := range t.Classifiers {
		if name == classifier {
			return t.Cells(category, m)[col]
		}
	}
	return Cell{}
}

// Marks flags the maximum of a row and, when more than one classifier is
// present, the second-largest distinct value. Ties share a mark.
func (t *Table) Marks(category string, m Metric) []Mark {
	return markRow(t.Cells(category, m), len(t.Classifiers) > 1)
}

func markRow(cells []Cell, runnerUp bool) []Mark {
	marks := make([]Mark, len(cells))
	var distinct []float64
	seen := make(map[float64]struct{})
	for _, c := range cells {
		if !c.Present {
			continue
		}
		if _, ok := seen[c.Value]; !ok {
			seen[c.Value] = struct{}{}
			distinct = append(distinct, c.Value)
		}
	}
	if len(distinct) == 0 {
		return marks
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	for i, c := range cells {
		switch {
		case !c.Present:
		case c.Value == distinct[0]:
			marks[i] = MarkBest
		case runnerUp && len(distinct) > 1 && c.Value == distinct[1]:
			marks[i] = MarkRunnerUp
		}
	}
	return marks
}
