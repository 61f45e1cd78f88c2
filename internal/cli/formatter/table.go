package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured visibly so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, joinCells(headers, widths, StyleHeader.Render))

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	lines = append(lines, joinCells(seps, widths, StyleDim.Render))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		lines = append(lines, joinCells(cells, widths, nil))
	}
	return strings.Join(lines, "\n")
}

func joinCells(cells []string, widths []int, style func(...string) string) string {
	var b strings.Builder
	for i, cell := range cells {
		pad := widths[i] - lipgloss.Width(cell)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", max(pad, 0)+colGap))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
