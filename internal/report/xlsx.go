// internal/report/xlsx.go
package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
)

const (
	summarySheet = "summary"
	runsSheet    = "runs"
)

// WriteXLSX saves the summary table and every per-run series to a workbook.
func WriteXLSX(path string, table *metrics.Table, classifiers []*metrics.Classifier) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(summarySheet)
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	addStrings(summary.AddRow(), append([]string{"category", "metric"}, table.Classifiers...)...)
	for _, category := range table.Rows() {
		for _, m := range metrics.AllMetrics() {
			row := summary.AddRow()
			addStrings(row, category, m.String())
			for _, cell := range table.Cells(category, m) {
				c := row.AddCell()
				if cell.Present {
					c.SetFloat(cell.Value)
				}
			}
		}
	}

	runs, err := f.AddSheet(runsSheet)
	if err != nil {
		return eris.Wrap(err, "report: add runs sheet")
	}
	addStrings(runs.AddRow(), "classifier", "category", "metric", "mean", "values")
	for _, cls := range classifiers {
		for _, cat := range cls.Categories {
			for _, m := range metrics.RunMetrics() {
				row := runs.AddRow()
				addStrings(row, cls.Name, cat.Name, m.String())
				row.AddCell().SetFloat(cat.RunMean(m))
				for _, v := range cat.RunValues(m) {
					row.AddCell().SetFloat(v)
				}
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}

func addStrings(row *xlsx.Row, values ...string) {
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
