package domain

import (
	"strconv"
	"strings"
)

// CellKind identifies the state of a cell value.
type CellKind int

const (
	// CellMissing marks a cell with no value (absent field, empty input,
	// or a recognized missing sentinel after coercion).
	CellMissing CellKind = iota
	// CellText marks a cell holding raw or trimmed text.
	CellText
	// CellNumber marks a cell holding a parsed numeric value.
	CellNumber
)

// Cell is a tagged value: missing, text, or number. The zero value is a
// missing cell.
type Cell struct {
	Kind    CellKind
	Text    string
	Number  float64
	Integer bool // render Number without a fractional part
}

// MissingCell returns a cell in the missing state.
func MissingCell() Cell {
	return Cell{Kind: CellMissing}
}

// TextCell returns a cell holding the given text.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a cell holding a float value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// IntCell returns a numeric cell that renders as an integer.
func IntCell(i int64) Cell {
	return Cell{Kind: CellNumber, Number: float64(i), Integer: true}
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber
}

// Raw returns the textual form of the cell the way loose tabular data
// stringifies: a missing value becomes the literal text "nan". Downstream
// coercion recognizes "nan" as a missing sentinel, so the round trip is
// intentional and must not be "fixed".
func (c Cell) Raw() string {
	switch c.Kind {
	case CellMissing:
		return "nan"
	case CellNumber:
		if c.Integer {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return c.Text
	}
}

// Row maps a column name to its cell value.
type Row map[string]Cell

// Table is an ordered sequence of rows sharing an ordered set of unique
// column names. Every row carries exactly the table's column set as keys;
// absent values are represented by missing cells, never by absent keys.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order. Duplicate
// names keep their first position; the later occurrence is dropped from
// the order.
func NewTable(columns ...string) Table {
	t := Table{}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		t.Columns = append(t.Columns, col)
	}
	return t
}

// HasColumn reports whether the table defines the named column.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a new column filled with missing cells. Adding an
// existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i][name] = MissingCell()
	}
}

// AppendRow adds a row, filling any column the row does not mention with
// a missing cell. Keys outside the column set are ignored.
func (t *Table) AppendRow(r Row) {
	row := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		if cell, ok := r[col]; ok {
			row[col] = cell
		} else {
			row[col] = MissingCell()
		}
	}
	t.Rows = append(t.Rows, row)
}

// Get returns the cell at the given row index and column. A column the
// table does not define reads as missing.
func (t Table) Get(i int, col string) Cell {
	if i < 0 || i >= len(t.Rows) {
		return MissingCell()
	}
	cell, ok := t.Rows[i][col]
	if !ok {
		return MissingCell()
	}
	return cell
}

// Set writes the cell at the given row index and column.
func (t *Table) Set(i int, col string, c Cell) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.Rows[i][col] = c
}

// Column returns the column's cells in row order.
func (t Table) Column(name string) []Cell {
	cells := make([]Cell, len(t.Rows))
	for i := range t.Rows {
		cells[i] = t.Get(i, name)
	}
	return cells
}

// SetColumn replaces the column's cells in row order. Extra cells are
// ignored; short input leaves trailing rows untouched.
func (t *Table) SetColumn(name string, cells []Cell) {
	for i := range t.Rows {
		if i >= len(cells) {
			return
		}
		t.Rows[i][name] = cells[i]
	}
}

// Clone returns a deep copy of the table. Stages that rewrite cells work
// on a clone so the caller's table is never mutated.
func (t Table) Clone() Table {
	out := Table{Columns: make([]string, len(t.Columns)), Rows: make([]Row, len(t.Rows))}
	copy(out.Columns, t.Columns)
	for i, row := range t.Rows {
		dup := make(Row, len(row))
		for col, cell := range row {
			dup[col] = cell
		}
		out.Rows[i] = dup
	}
	return out
}

// CleanStats summarizes a single cleaning run.
type CleanStats struct {
	RowsIn            int `json:"rows_in"`
	RowsOut           int `json:"rows_out"`
	RowsDropped       int `json:"rows_dropped"`
	PricesImputed     int `json:"prices_imputed"`
	QuantitiesImputed int `json:"quantities_imputed"`
}

// CleanReport describes a completed cleaning run for one input file.
type CleanReport struct {
	RunID      string     `json:"run_id"`
	InputPath  string     `json:"input_path"`
	OutputPath string     `json:"output_path"`
	Stats      CleanStats `json:"stats"`
}

// CanonicalColumnName returns the canonical column-name form used across
// the pipeline: trimmed, lowercased, internal whitespace runs collapsed to
// single underscores.
func CanonicalColumnName(name string) string {
	return collapseWhitespace(strings.ToLower(strings.TrimSpace(name)))
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte('_')
			inRun = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
