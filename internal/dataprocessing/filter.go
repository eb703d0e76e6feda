package dataprocessing

import (
	"strings"

	"salesclean/pkg/contracts/domain"
)

// FilterInvalidRows returns the rows that remain semantically valid after
// imputation. A row survives when all of the following hold:
//
//   - price and quantity are present numeric values (re-checked here even
//     though imputation should guarantee it),
//   - price > 0 and quantity > 0, strictly; zero is invalid,
//   - when a product column exists, the product value is non-missing and
//     non-empty after trimming. Tables without a product column skip the
//     check entirely.
//
// The filter is stable: surviving rows keep their relative order and are
// reindexed contiguously from zero.
func FilterInvalidRows(t domain.Table) domain.Table {
	out := domain.Table{Columns: make([]string, len(t.Columns))}
	copy(out.Columns, t.Columns)

	checkProduct := t.HasColumn(ColumnProduct)
	for i := range t.Rows {
		price := t.Get(i, ColumnPrice)
		quantity := t.Get(i, ColumnQuantity)
		if !price.IsNumber() || !quantity.IsNumber() {
			continue
		}
		if price.Number <= 0 || quantity.Number <= 0 {
			continue
		}
		if checkProduct && !validProduct(t.Get(i, ColumnProduct)) {
			continue
		}
		out.Rows = append(out.Rows, t.Rows[i])
	}
	return out
}

func validProduct(cell domain.Cell) bool {
	if cell.IsMissing() {
		return false
	}
	return strings.TrimSpace(cell.Raw()) != ""
}
