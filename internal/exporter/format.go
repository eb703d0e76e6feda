package exporter

import (
	"strconv"

	"salesclean/pkg/contracts/domain"
)

// formatCell renders a cell for CSV output. Missing cells become empty
// fields; the caller decides whether that ever happens (the cleaned
// price/quantity columns are fully populated by construction).
func formatCell(c domain.Cell) string {
	switch c.Kind {
	case domain.CellMissing:
		return ""
	case domain.CellNumber:
		if c.Integer {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return c.Text
	}
}
