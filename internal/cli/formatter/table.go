package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line.
// Columns are padded to the widest cell, measured by visible width so
// styled cells align. maxWidth > 0 truncates each rendered line.
func RenderTable(headers []string, rows [][]string, maxWidth int) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var lines []string

	var hb strings.Builder
	for i, h := range headers {
		hb.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			hb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	lines = append(lines, hb.String())

	var sb strings.Builder
	for i, w := range widths {
		sb.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			sb.WriteString(strings.Repeat(" ", colGap))
		}
	}
	lines = append(lines, sb.String())

	for _, row := range rows {
		var rb strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rb.WriteString(cell)
			if i < cols-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				rb.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		lines = append(lines, rb.String())
	}

	if maxWidth > 0 {
		trunc := lipgloss.NewStyle().MaxWidth(maxWidth)
		for i, line := range lines {
			lines[i] = trunc.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
