package dataprocessing

import (
	"strings"

	"salesclean/pkg/contracts/domain"
)

// NormalizeColumns canonicalizes every column name (trim, lowercase,
// collapse internal whitespace to underscores) and rewrites every cell of
// a textual column to its trimmed text form. Column order is preserved.
//
// When two raw names canonicalize to the same name, the later column's
// data wins and the earlier occurrence keeps the position in the column
// order. The choice is deliberate: last writer wins, matching how loose
// tabular tooling overwrites a reassigned column.
//
// Stringification happens before trimming, so a missing cell in a textual
// column becomes the literal text "nan". Later coercion recognizes "nan"
// as a missing sentinel; rows that keep a textual "nan" (e.g. product)
// compare as non-empty downstream. Load-bearing behavior, not a bug.
func NormalizeColumns(t domain.Table) domain.Table {
	out := domain.Table{Rows: make([]domain.Row, len(t.Rows))}

	position := make(map[string]int)
	source := make(map[string]string) // canonical -> winning raw name
	for _, raw := range t.Columns {
		canon := domain.CanonicalColumnName(raw)
		if _, ok := position[canon]; !ok {
			position[canon] = len(out.Columns)
			out.Columns = append(out.Columns, canon)
		}
		source[canon] = raw
	}

	textual := make(map[string]bool, len(out.Columns))
	for _, canon := range out.Columns {
		textual[canon] = isTextualColumn(t, source[canon])
	}

	for i := range t.Rows {
		row := make(domain.Row, len(out.Columns))
		for _, canon := range out.Columns {
			cell := t.Rows[i][source[canon]]
			if textual[canon] {
				cell = domain.TextCell(strings.TrimSpace(cell.Raw()))
			}
			row[canon] = cell
		}
		out.Rows[i] = row
	}

	return out
}

// isTextualColumn reports whether a column should be stringified. A column
// counts as numeric only when it holds at least one number cell and no
// text cells; everything else, including an all-missing column, is text.
func isTextualColumn(t domain.Table, col string) bool {
	numbers := 0
	for i := range t.Rows {
		switch t.Rows[i][col].Kind {
		case domain.CellText:
			return true
		case domain.CellNumber:
			numbers++
		}
	}
	return numbers == 0
}
