// Package stats contains statistics calculations and reporting.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column widths for the steps, minutes and rate columns. The note column is
// appended unpadded.
var columnWidths = []int{10, 10, 15}

var reportHeaders = []string{"Steps", "Minutes", "Steps/Min", "Idea"}

func formatTable(headers []string, rows [][]string, widths []int) []string {
	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	return lines
}

// formatRow pads the fixed columns and appends the trailing cell verbatim.
// Padding is trimmed only when there is no trailing text after it.
func formatRow(row []string, widths []int) string {
	var b strings.Builder
	for i, cell := range row {
		if i < len(widths) {
			b.WriteString(padCell(cell, widths[i]))
			continue
		}
		b.WriteString(cell)
	}
	if len(row) > len(widths) && row[len(row)-1] != "" {
		return b.String()
	}
	return strings.TrimRight(b.String(), " ")
}

// padCell left-justifies value to width. Overlong values keep one trailing
// space so columns stay separable.
func padCell(value string, width int) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value + " "
	}
	return value + strings.Repeat(" ", width-valueWidth)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
