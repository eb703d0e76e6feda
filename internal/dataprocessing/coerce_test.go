package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/pkg/contracts/domain"
)

func TestCoerceNumeric_WithCurrencyStripping(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMissing bool
		want        float64
	}{
		{name: "plain number", raw: "7.50", want: 7.5},
		{name: "currency symbol", raw: "$10.00", want: 10.0},
		{name: "thousands separators", raw: "1,234.56", want: 1234.56},
		{name: "trailing unit", raw: "12.00 USD", want: 12.0},
		{name: "negative", raw: "-5.00", want: -5.0},
		{name: "surrounding whitespace", raw: "  3.25  ", want: 3.25},
		{name: "empty string", raw: "", wantMissing: true},
		{name: "sentinel N/A", raw: "N/A", wantMissing: true},
		{name: "sentinel nan", raw: "nan", wantMissing: true},
		{name: "letters only", raw: "abc", wantMissing: true},
		{name: "lone minus", raw: "-", wantMissing: true},
		{name: "multi-dot garbage", raw: "1.2.3", wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceNumeric([]domain.Cell{domain.TextCell(tt.raw)}, true)

			require.Len(t, got, 1)
			if tt.wantMissing {
				assert.True(t, got[0].IsMissing())
				return
			}
			require.True(t, got[0].IsNumber())
			assert.Equal(t, tt.want, got[0].Number)
		})
	}
}

func TestCoerceNumeric_WithoutStripping(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMissing bool
		want        float64
	}{
		{name: "plain integer", raw: "2", want: 2},
		{name: "negative kept", raw: "-3", want: -3},
		{name: "currency symbol does not parse", raw: "$2", wantMissing: true},
		{name: "sentinel None", raw: "None", wantMissing: true},
		{name: "sentinel NA", raw: "NA", wantMissing: true},
		{name: "empty", raw: "", wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceNumeric([]domain.Cell{domain.TextCell(tt.raw)}, false)

			require.Len(t, got, 1)
			if tt.wantMissing {
				assert.True(t, got[0].IsMissing())
				return
			}
			require.True(t, got[0].IsNumber())
			assert.Equal(t, tt.want, got[0].Number)
		})
	}
}

func TestCoerceNumeric_MixedSequence(t *testing.T) {
	cells := []domain.Cell{
		domain.TextCell("N/A"),
		domain.TextCell(""),
		domain.TextCell("7.50"),
		domain.TextCell("abc"),
	}

	got := CoerceNumeric(cells, true)

	require.Len(t, got, 4)
	assert.True(t, got[0].IsMissing())
	assert.True(t, got[1].IsMissing())
	require.True(t, got[2].IsNumber())
	assert.Equal(t, 7.5, got[2].Number)
	assert.True(t, got[3].IsMissing())
}

func TestCoerceNumeric_MissingCellStaysMissing(t *testing.T) {
	// A missing cell stringifies to "nan", which is a recognized
	// sentinel, so the round trip preserves missingness.
	for _, strip := range []bool{true, false} {
		got := CoerceNumeric([]domain.Cell{domain.MissingCell()}, strip)
		require.Len(t, got, 1)
		assert.True(t, got[0].IsMissing())
	}
}

func TestCoerceNumeric_LengthAndOrderPreserved(t *testing.T) {
	cells := []domain.Cell{
		domain.TextCell("1"),
		domain.TextCell("bad"),
		domain.TextCell("3"),
	}

	got := CoerceNumeric(cells, false)

	require.Len(t, got, len(cells))
	assert.Equal(t, 1.0, got[0].Number)
	assert.True(t, got[1].IsMissing())
	assert.Equal(t, 3.0, got[2].Number)
	// input untouched
	assert.Equal(t, "bad", cells[1].Text)
}

func TestCoerceNumeric_EmptyInput(t *testing.T) {
	got := CoerceNumeric(nil, true)
	assert.Empty(t, got)
}
