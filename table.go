package docq

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultMaxWidth is the output width used when the terminal size is unknown.
const DefaultMaxWidth = 90

// Spacer separates table columns.
const Spacer = "  "

// Table is a plain text table that tracks the display width of each column.
// Rows are append-only. Cells are left justified and two-cell rows whose
// description does not fit are word wrapped under the second column.
type Table struct {
	rows     [][]string
	widths   []int
	maxWidth int
}

// NewTable returns an empty table that renders within maxWidth cells.
// A non-positive maxWidth falls back to DefaultMaxWidth.
func NewTable(maxWidth int) *Table {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Table{maxWidth: maxWidth}
}

// AddRow appends a row and grows the tracked column widths as needed.
func (t *Table) AddRow(cells []string) {
	for len(t.widths) < len(cells) {
		t.widths = append(t.widths, 0)
	}
	for i, cell := range cells {
		t.widths[i] = max(t.widths[i], uniseg.StringWidth(cell))
	}
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Widths returns a copy of the tracked column widths.
func (t *Table) Widths() []int {
	return append([]int(nil), t.widths...)
}

// Render lays the rows out as left justified, column aligned text.
// Every row must have exactly two cells; any other shape returns EINTERNAL.
func (t *Table) Render() (string, error) {
	lines := make([]string, 0, len(t.rows))
	for i, row := range t.rows {
		if len(row) != 2 {
			return "", Errorf(EINTERNAL, "table row %d has %d cells, two-column layout needs 2", i, len(row))
		}
		lines = append(lines, t.twoColumn(row))
	}
	return strings.Join(lines, "\n"), nil
}

func (t *Table) twoColumn(row []string) string {
	nameWidth := t.widths[0]
	if nameWidth+t.widths[1]+len(Spacer) <= t.maxWidth {
		return strings.TrimRight(pad(row[0], nameWidth)+Spacer+row[1], " ")
	}

	indentWidth := nameWidth + len(Spacer)
	indent := strings.Repeat(" ", indentWidth)

	var b strings.Builder
	line := pad(row[0], nameWidth) + Spacer
	lineWidth := indentWidth
	atLineStart := true

	for _, word := range strings.Fields(row[1]) {
		wordWidth := uniseg.StringWidth(word)
		switch {
		case atLineStart:
			line += word
			lineWidth += wordWidth
			atLineStart = false
		case lineWidth+1+wordWidth <= t.maxWidth:
			line += " " + word
			lineWidth += 1 + wordWidth
		default:
			b.WriteString(line)
			b.WriteByte('\n')
			line = indent + word
			lineWidth = indentWidth + wordWidth
		}
	}
	b.WriteString(strings.TrimRight(line, " "))
	return b.String()
}

// pad left justifies s in a field of width display cells.
func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
