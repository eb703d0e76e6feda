package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/salesclean.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// PathsConfig contains file system paths configuration. An empty BaseDir
// resolves to the executable's directory.
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	RawDir       string `yaml:"raw_dir" envconfig:"RAW_DIR" default:"data/raw" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" default:"data/processed" validate:"required"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// CleaningConfig contains cleaning run configuration
type CleaningConfig struct {
	PreviewRows int `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" default:"5" validate:"min=0"`
	Workers     int `yaml:"workers" envconfig:"WORKERS" default:"4" validate:"min=1"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SALESCLEAN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	out := envConfig
	def := Default()

	if out.Logging.Level == def.Logging.Level {
		out.Logging.Level = fileConfig.Logging.Level
	}
	if out.Logging.Format == def.Logging.Format {
		out.Logging.Format = fileConfig.Logging.Format
	}
	if out.Logging.Output == def.Logging.Output {
		out.Logging.Output = fileConfig.Logging.Output
	}
	if out.Logging.FilePath == def.Logging.FilePath {
		out.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if out.Paths.BaseDir == "" {
		out.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if out.Paths.RawDir == def.Paths.RawDir {
		out.Paths.RawDir = fileConfig.Paths.RawDir
	}
	if out.Paths.ProcessedDir == def.Paths.ProcessedDir {
		out.Paths.ProcessedDir = fileConfig.Paths.ProcessedDir
	}
	if out.Paths.LogsDir == def.Paths.LogsDir {
		out.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if out.Cleaning.PreviewRows == def.Cleaning.PreviewRows {
		out.Cleaning.PreviewRows = fileConfig.Cleaning.PreviewRows
	}
	if out.Cleaning.Workers == def.Cleaning.Workers {
		out.Cleaning.Workers = fileConfig.Cleaning.Workers
	}

	return out
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the path to the config file, if one exists
// in a common location.
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // no config file, env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/salesclean.log",
		},
		Paths: PathsConfig{
			RawDir:       "data/raw",
			ProcessedDir: "data/processed",
			LogsDir:      "logs",
		},
		Cleaning: CleaningConfig{
			PreviewRows: 5,
			Workers:     4,
		},
	}
}
