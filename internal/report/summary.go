// internal/report/summary.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/metrics"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	bestStyle     = cellStyle.Foreground(lipgloss.Color("46")).Bold(true)
	runnerUpStyle = cellStyle.Foreground(lipgloss.Color("203"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// PrintSummary writes one terminal table per requested category, with a row
// per metric and a column per classifier. With no categories only the
// average pseudo-category is printed.
func PrintSummary(out io.Writer, t *metrics.Table, categories ...string) {
	if len(categories) == 0 {
		categories = []string{metrics.AverageRow}
	}
	for _, category := range categories {
		fmt.Fprintln(out, headerStyle.Render(category))
		fmt.Fprintln(out, summaryTable(t, category).Render())
	}
}

func summaryTable(t *metrics.Table, category string) *table.Table {
	all := metrics.AllMetrics()
	marks := make([][]metrics.Mark, len(all))
	rows := make([][]string, len(all))
	for i, m := range all {
		marks[i] = t.Marks(category, m)
		row := []string{m.String()}
		for _, cell := range t.Cells(category, m) {
			row = append(row, formatCell(cell))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(append([]string{"metric"}, t.Classifiers...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 || row < 0 || row >= len(marks) {
				return cellStyle
			}
			switch marks[row][col-1] {
			case metrics.MarkBest:
				return bestStyle
			case metrics.MarkRunnerUp:
				return runnerUpStyle
			default:
				return cellStyle
			}
		})
}
