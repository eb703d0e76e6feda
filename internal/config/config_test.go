package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data/raw", cfg.Paths.RawDir)
	assert.Equal(t, "data/processed", cfg.Paths.ProcessedDir)
	assert.Equal(t, 5, cfg.Cleaning.PreviewRows)
	assert.Equal(t, 4, cfg.Cleaning.Workers)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "negative preview rows",
			mutate:  func(c *Config) { c.Cleaning.PreviewRows = -1 },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Cleaning.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "empty raw dir",
			mutate:  func(c *Config) { c.Paths.RawDir = "" },
			wantErr: true,
		},
		{
			name:   "zero preview rows allowed",
			mutate: func(c *Config) { c.Cleaning.PreviewRows = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALESCLEAN_LOGGING_LEVEL", "debug")
	t.Setenv("SALESCLEAN_CLEANING_WORKERS", "2")
	t.Setenv("SALESCLEAN_PATHS_BASE_DIR", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Cleaning.Workers)
}

func TestLoad_InvalidEnvRejected(t *testing.T) {
	t.Setenv("SALESCLEAN_LOGGING_LEVEL", "shouting")

	_, err := Load()

	assert.Error(t, err)
}

func TestMergeConfigs_EnvWins(t *testing.T) {
	fileCfg := *Default()
	fileCfg.Logging.Level = "warn"
	fileCfg.Cleaning.Workers = 8

	envCfg := *Default()
	envCfg.Cleaning.Workers = 2 // explicitly set via env

	merged := mergeConfigs(fileCfg, envCfg)

	// File value fills the untouched default; env value survives.
	assert.Equal(t, "warn", merged.Logging.Level)
	assert.Equal(t, 2, merged.Cleaning.Workers)
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths, err := NewPaths(PathsConfig{
		BaseDir:      base,
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		LogsDir:      "logs",
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data/raw"), paths.RawDir)
	assert.Equal(t, filepath.Join(base, "data/raw", "sales.csv"), paths.RawPath("sales.csv"))
	assert.Equal(t, filepath.Join(base, "data/processed", "clean.csv"), paths.ProcessedPath("clean.csv"))
	assert.Equal(t, filepath.Join(base, "logs", "run.log"), paths.LogPath("run.log"))
}

func TestNewPaths_AbsoluteDirsKept(t *testing.T) {
	raw := t.TempDir()
	paths, err := NewPaths(PathsConfig{
		BaseDir:      t.TempDir(),
		RawDir:       raw,
		ProcessedDir: "out",
		LogsDir:      "logs",
	})

	require.NoError(t, err)
	assert.Equal(t, raw, paths.RawDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths, err := NewPaths(PathsConfig{
		BaseDir:      base,
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		LogsDir:      "logs",
	})
	require.NoError(t, err)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.RawDir, paths.ProcessedDir, paths.LogsDir} {
		assert.DirExists(t, dir)
	}
}
