package files

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"salesclean/pkg/contracts/domain"
)

// ReadCSV loads a delimited text file into a raw table. Every cell is
// kept as raw text with no type inference; an empty field reads as a
// missing cell. The first record is the header row.
func ReadCSV(path string) (domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // raw input is often ragged

	records, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("file %s has no header row", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	table := rawTable(header, records[1:])

	slog.Debug("Loaded CSV file",
		slog.String("path", path),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

// ReadTable dispatches on the file extension: .csv loads as delimited
// text, .xlsx as an Excel workbook.
func ReadTable(path string) (domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadExcel(path)
	default:
		return domain.Table{}, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// rawTable builds a raw-text table from a header and data records. Short
// records are padded with missing cells; fields beyond the header are
// dropped. A duplicate header name keeps its first position and the
// later field's data (last writer wins, as in normalization collisions).
func rawTable(header []string, records [][]string) domain.Table {
	table := domain.NewTable(header...)
	for _, record := range records {
		row := make(domain.Row, len(table.Columns))
		for i, name := range header {
			if i >= len(record) || record[i] == "" {
				row[name] = domain.MissingCell()
				continue
			}
			row[name] = domain.TextCell(record[i])
		}
		table.AppendRow(row)
	}
	return table
}
