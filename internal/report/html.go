// internal/report/html.go
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
)

// Highlight holds the CSS colors used for marked cells.
type Highlight struct {
	Primary   string
	Secondary string
}

type tableReportData struct {
	Title       string
	Classifiers []string
	Rows        []tableReportRow
	Highlight   Highlight
}

type tableReportRow struct {
	Category string
	Span     int
	First    bool
	Metric   string
	Cells    []tableReportCell
}

type tableReportCell struct {
	Text  string
	Class string
}

// RenderHTML renders the summary table as a standalone styled HTML page. The
// maximum of every row is highlighted with the primary color and, when more
// than one classifier is present, the runner-up with the secondary color.
func RenderHTML(table *metrics.Table, colors Highlight) (string, error) {
	data := tableReportData{
		Title:       "Classifiers summary",
		Classifiers: table.Classifiers,
		Highlight:   colors,
	}
	all := metrics.AllMetrics()
	for _, category := range table.Rows() {
		for i, m := range all {
			marks := table.Marks(category, m)
			row := tableReportRow{
				Category: category,
				Span:     len(all),
				First:    i == 0,
				Metric:   m.String(),
			}
			for col, cell := range table.Cells(category, m) {
				row.Cells = append(row.Cells, tableReportCell{
					Text:  formatCell(cell),
					Class: markClass(marks[col]),
				})
			}
			data.Rows = append(data.Rows, row)
		}
	}

	var buf bytes.Buffer
	if err := tableReportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatCell(c metrics.Cell) string {
	if !c.Present {
		return "—"
	}
	return fmt.Sprintf("%.6f", c.Value)
}

func markClass(m metrics.Mark) string {
	switch m {
	case metrics.MarkBest:
		return "best"
	case metrics.MarkRunnerUp:
		return "runner-up"
	default:
		return ""
	}
}

var tableReportTemplate = template.Must(template.New("classifiers-table").Parse(tableReportTemplateHTML))

const tableReportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: "DejaVu Sans", Arial, sans-serif; background: #ffffff; color: #0f172a; }
    table { border-collapse: collapse; font-size: 14px; }
    th, td { border: 1px solid #ffffff; padding: 4px 10px; }
    thead th { background-color: #40466e; color: #ffffff; font-weight: bold; }
    tbody th { text-align: left; background-color: #e2e8f0; }
    tbody tr:nth-child(odd) td { background-color: #f1f1f2; }
    td { text-align: right; font-variant-numeric: tabular-nums; }
    tbody tr td.best { background-color: {{ .Highlight.Primary }}; color: #ffffff; }
    tbody tr td.runner-up { background-color: {{ .Highlight.Secondary }}; color: #ffffff; }
  </style>
</head>
<body>
  <table id="classifiers">
    <thead>
      <tr>
        <th>category</th>
        <th>metric</th>
        {{- range .Classifiers }}
        <th>{{ . }}</th>
        {{- end }}
      </tr>
    </thead>
    <tbody>
      {{- range .Rows }}
      <tr>
        {{- if .First }}
        <th rowspan="{{ .Span }}">{{ .Category }}</th>
        {{- end }}
        <th>{{ .Metric }}</th>
        {{- range .Cells }}
        <td{{ if .Class }} class="{{ .Class }}"{{ end }}>{{ .Text }}</td>
        {{- end }}
      </tr>
      {{- end }}
    </tbody>
  </table>
</body>
</html>
`
