package docq

import (
	"strings"

	"github.com/rivo/uniseg"
)

// FormatColumns lays items out in equally sized columns that fit within
// maxWidth, filling each row left to right.
func FormatColumns(items []string, maxWidth int) string {
	if len(items) == 0 {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	colWidth := 0
	for _, item := range items {
		colWidth = max(colWidth, uniseg.StringWidth(item))
	}
	perRow := max(maxWidth/(colWidth+1), 1)

	lines := make([]string, 0, len(items)/perRow+1)
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		cells := make([]string, 0, end-start)
		for _, item := range items[start:end] {
			cells = append(cells, pad(item, colWidth))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}
