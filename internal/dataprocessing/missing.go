package dataprocessing

import (
	"sort"

	"salesclean/pkg/contracts/domain"
)

// Distinguished columns the imputation stage guarantees.
const (
	ColumnPrice    = "price"
	ColumnQuantity = "quantity"
	ColumnProduct  = "product"
)

// HandleMissingValues guarantees fully populated numeric price and
// quantity columns on a normalized table:
//
//   - A missing price or quantity column is synthesized as all-missing.
//   - price is coerced with currency-noise stripping; quantity without it,
//     so a legitimate negative quantity keeps its sign for the filter.
//   - Missing quantities are filled with 1 and the column is converted to
//     integer representation, truncating any fraction.
//   - Missing prices are filled with the median of the non-missing prices;
//     with no parseable price in the whole table they are filled with 0.0,
//     which lets the filter stage drop every row instead of failing.
func HandleMissingValues(t domain.Table) domain.Table {
	out, _ := handleMissing(t)
	return out
}

// handleMissing additionally reports how many cells were imputed, for the
// run report.
func handleMissing(t domain.Table) (domain.Table, domain.CleanStats) {
	out := t.Clone()
	var stats domain.CleanStats

	out.AddColumn(ColumnPrice)
	out.AddColumn(ColumnQuantity)

	prices := CoerceNumeric(out.Column(ColumnPrice), true)
	quantities := CoerceNumeric(out.Column(ColumnQuantity), false)

	for i, cell := range quantities {
		if cell.IsMissing() {
			stats.QuantitiesImputed++
			quantities[i] = domain.IntCell(1)
			continue
		}
		quantities[i] = domain.IntCell(int64(cell.Number))
	}

	fill := domain.NumberCell(0)
	if m, ok := medianOf(prices); ok {
		fill = domain.NumberCell(m)
	}
	for i, cell := range prices {
		if cell.IsMissing() {
			stats.PricesImputed++
			prices[i] = fill
		}
	}

	out.SetColumn(ColumnPrice, prices)
	out.SetColumn(ColumnQuantity, quantities)
	return out, stats
}

// medianOf returns the median of the non-missing cells: the middle value
// of the sorted sequence, or the mean of the two middle values for an
// even count. ok is false when no value is present.
func medianOf(cells []domain.Cell) (float64, bool) {
	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if cell.IsNumber() {
			values = append(values, cell.Number)
		}
	}
	if len(values) == 0 {
		return 0, false
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], true
	}
	return (values[mid-1] + values[mid]) / 2, true
}
