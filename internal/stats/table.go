// Package stats contains statistics calculations and reporting.
package stats

import (
	"strings"
	"unicode/utf8"
)

// formatTable lays out header and data rows into aligned plain-text
// lines. Columns listed in rightAlign are padded on the left.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	if len(headers) == 0 {
		return nil
	}
	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				if w := utf8.RuneCountInString(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	render := func(row []string) string {
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if rightAlign[i] {
				cells[i] = pad + cell
			} else {
				cells[i] = cell + pad
			}
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, render(headers))
	for _, row := range rows {
		lines = append(lines, render(row))
	}
	return lines
}
