package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"salesclean/pkg/contracts/domain"
)

// missing sentinels recognized after trimming (and stripping, when
// enabled). Matches are case-sensitive on these exact forms.
var missingSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"N/A":  {},
	"NA":   {},
}

// CoerceNumeric converts a column's raw cells into optional floats. It is
// a total function: anything that does not parse becomes a missing cell,
// never an error. Output length and order match the input.
//
// When stripCurrencyNoise is set, every character that is not a digit,
// '.' or '-' is deleted before parsing. That removes currency symbols,
// thousands separators and units, and can also mangle multi-sign or
// multi-dot garbage into something that parses unpredictably; that is the
// defined behavior.
func CoerceNumeric(cells []domain.Cell, stripCurrencyNoise bool) []domain.Cell {
	out := make([]domain.Cell, len(cells))
	for i, cell := range cells {
		out[i] = coerceOne(cell, stripCurrencyNoise)
	}
	return out
}

func coerceOne(cell domain.Cell, stripCurrencyNoise bool) domain.Cell {
	s := strings.TrimSpace(cell.Raw())
	if stripCurrencyNoise {
		s = stripNonNumeric(s)
	}
	if _, ok := missingSentinels[s]; ok {
		return domain.MissingCell()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return domain.MissingCell()
	}
	return domain.NumberCell(v)
}

// stripNonNumeric deletes every byte outside [0-9.-].
func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
