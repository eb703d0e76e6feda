package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/internal/config"
	"salesclean/pkg/contracts/domain"
)

func cleanedTable() domain.Table {
	table := domain.NewTable("product", "price", "quantity")
	table.AppendRow(domain.Row{
		"product":  domain.TextCell("Good"),
		"price":    domain.NumberCell(10.0),
		"quantity": domain.IntCell(2),
	})
	table.AppendRow(domain.Row{
		"product":  domain.TextCell("NoQty"),
		"price":    domain.NumberCell(12.5),
		"quantity": domain.IntCell(1),
	})
	return table
}

func TestCSVWriter_WriteTable(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(nil)
	out := filepath.Join(dir, "clean.csv")

	err := writer.WriteTable(out, cleanedTable(), WriteOptions{})

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "product,price,quantity\nGood,10,2\nNoQty,12.5,1\n", string(data))
}

func TestCSVWriter_WriteTable_BOMPrefix(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(nil)
	out := filepath.Join(dir, "clean.csv")

	err := writer.WriteTable(out, cleanedTable(), WriteOptions{BOMPrefix: true})

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestCSVWriter_WriteTable_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(nil)
	out := filepath.Join(dir, "nested", "deep", "clean.csv")

	err := writer.WriteTable(out, cleanedTable(), WriteOptions{})

	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestCSVWriter_RelativePathUsesProcessedDir(t *testing.T) {
	base := t.TempDir()
	paths, err := config.NewPaths(config.PathsConfig{
		BaseDir:      base,
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		LogsDir:      "logs",
	})
	require.NoError(t, err)

	writer := NewCSVWriter(paths)
	require.NoError(t, writer.WriteTable("clean.csv", cleanedTable(), WriteOptions{}))

	assert.FileExists(t, filepath.Join(base, "data/processed", "clean.csv"))
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		cell domain.Cell
		want string
	}{
		{name: "missing is empty", cell: domain.MissingCell(), want: ""},
		{name: "text as-is", cell: domain.TextCell("widget"), want: "widget"},
		{name: "float shortest form", cell: domain.NumberCell(10.0), want: "10"},
		{name: "float fraction kept", cell: domain.NumberCell(12.25), want: "12.25"},
		{name: "integer cell", cell: domain.IntCell(7), want: "7"},
		{name: "negative integer cell", cell: domain.IntCell(-2), want: "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.cell))
		})
	}
}

func TestPreview(t *testing.T) {
	got := Preview(cleanedTable(), 1)

	lines := []string{
		"product  price  quantity",
		"Good     10     2",
		"",
	}
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", got)
}

func TestPreview_ClampsRowCount(t *testing.T) {
	table := cleanedTable()

	all := Preview(table, 100)
	none := Preview(table, 0)
	negative := Preview(table, -1)

	assert.Equal(t, none, negative)
	assert.Contains(t, all, "NoQty")
	assert.NotContains(t, none, "Good")
}
