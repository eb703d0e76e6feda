package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the resolved application paths.
// This is the single source of truth for file locations: the cleaning
// core never references the filesystem, so every path decision lives
// here and in the callers.
type Paths struct {
	BaseDir      string
	RawDir       string
	ProcessedDir string
	LogsDir      string
}

// NewPaths resolves the configured directories against the base
// directory. An empty base falls back to the executable's directory so
// the tool behaves the same regardless of the working directory it is
// launched from.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	base := cfg.BaseDir
	if base == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
		}
		base = filepath.Dir(exe)
	}

	return &Paths{
		BaseDir:      base,
		RawDir:       resolve(base, cfg.RawDir),
		ProcessedDir: resolve(base, cfg.ProcessedDir),
		LogsDir:      resolve(base, cfg.LogsDir),
	}, nil
}

func resolve(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// RawPath returns the full path for a file in the raw data directory
func (p *Paths) RawPath(filename string) string {
	return filepath.Join(p.RawDir, filename)
}

// ProcessedPath returns the full path for a file in the processed data directory
func (p *Paths) ProcessedPath(filename string) string {
	return filepath.Join(p.ProcessedDir, filename)
}

// LogPath returns the full path for a log file
func (p *Paths) LogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates all required directories if they do not exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.RawDir, p.ProcessedDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
