package files

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"salesclean/pkg/contracts/domain"
)

// ReadExcel loads the first sheet of an .xlsx workbook into a raw table.
// The first row is the header; every cell is kept as the raw text
// excelize reports, with empty cells read as missing. Raw sales exports
// frequently arrive as workbooks rather than delimited text, so the
// pipeline accepts both.
func ReadExcel(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return domain.Table{}, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	table := rawTable(rows[0], rows[1:])

	slog.Debug("Loaded Excel workbook",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}
