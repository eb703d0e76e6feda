package exporter

import (
	"strings"
	"unicode/utf8"

	"salesclean/pkg/contracts/domain"
)

// Preview renders the first n rows of a table as aligned columns for the
// post-run console preview. With n <= 0 or an empty table it returns only
// the header line.
func Preview(table domain.Table, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(table.Rows) {
		n = len(table.Rows)
	}

	widths := make([]int, len(table.Columns))
	for j, col := range table.Columns {
		widths[j] = utf8.RuneCountInString(col)
	}
	cells := make([][]string, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]string, len(table.Columns))
		for j, col := range table.Columns {
			s := formatCell(table.Get(i, col))
			cells[i][j] = s
			if w := utf8.RuneCountInString(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	writeLine := func(fields []string) {
		for j, field := range fields {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(field)
			if pad := widths[j] - utf8.RuneCountInString(field); j < len(fields)-1 && pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteByte('\n')
	}

	writeLine(table.Columns)
	for _, row := range cells {
		writeLine(row)
	}
	return b.String()
}
