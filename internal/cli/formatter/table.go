package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable lays out headers and rows as left-aligned columns separated
// by two spaces, with a dim rule under the header. Widths are measured in
// visible cells so pre-styled cells align. Short rows are padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	rules := make([]string, len(widths))
	styledHeaders := make([]string, len(headers))
	for i, w := range widths {
		rules[i] = StyleDim.Render(strings.Repeat("─", w))
		styledHeaders[i] = StyleHeader.Render(headers[i])
	}

	var b strings.Builder
	writeTableLine(&b, styledHeaders, widths)
	writeTableLine(&b, rules, widths)
	for _, row := range rows {
		writeTableLine(&b, row, widths)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}
	return widths
}

// writeTableLine writes one line; the last column is not padded.
func writeTableLine(b *strings.Builder, cells []string, widths []int) {
	last := len(widths) - 1
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i < last {
			b.WriteString(strings.Repeat(" ", max(0, w-lipgloss.Width(cell))+tableColGap))
		}
	}
	b.WriteByte('\n')
}
