package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a\n1\n"), 0644))

	validator := NewFileValidator(nil)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid csv", path: csvPath},
		{name: "missing file", path: filepath.Join(dir, "absent.csv"), wantErr: "does not exist"},
		{name: "directory", path: dir, wantErr: "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateInputFile(tt.path)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInputFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	err := NewFileValidator(nil).ValidateInputFile(path)

	assert.ErrorContains(t, err, "unsupported input format")
}

func TestValidateInputDirectory(t *testing.T) {
	dir := t.TempDir()
	validator := NewFileValidator(nil)

	assert.NoError(t, validator.ValidateInputDirectory(dir))
	assert.ErrorContains(t, validator.ValidateInputDirectory(filepath.Join(dir, "absent")), "does not exist")

	file := filepath.Join(dir, "x.csv")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))
	assert.ErrorContains(t, validator.ValidateInputDirectory(file), "is not a directory")
}

func TestValidateOutputDirectory_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, NewFileValidator(nil).ValidateOutputDirectory(dir))

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "write probe should be removed")
}
