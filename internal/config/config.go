package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/store"
)

// Config represents the application configuration
type Config struct {
	History  HistoryConfig  `yaml:"history"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// HistoryConfig selects where decisions are recorded
type HistoryConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}

// AnalysisConfig holds the drift estimation parameters
type AnalysisConfig struct {
	BucketWidth float64 `yaml:"bucket_width"`
	Confidence  float64 `yaml:"confidence"`
	MaxCIWidth  float64 `yaml:"max_ci_width"`
	MinCount    int     `yaml:"min_count"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level string `yaml:"level"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultHistoryFile is the history written to the working directory by default
const DefaultHistoryFile = "workout_history.json"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	params := analysis.DefaultParams()
	return Config{
		History: HistoryConfig{
			Backend: store.BackendJSON,
			Path:    DefaultHistoryFile,
		},
		Analysis: AnalysisConfig{
			BucketWidth: params.BucketWidth,
			Confidence:  params.Confidence,
			MaxCIWidth:  params.MaxCIWidth,
			MinCount:    params.MinCount,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.History.Backend == "" {
		cfg.History.Backend = defaults.History.Backend
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaults.History.Path
	}
	if cfg.Analysis.BucketWidth == 0 {
		cfg.Analysis.BucketWidth = defaults.Analysis.BucketWidth
	}
	if cfg.Analysis.Confidence == 0 {
		cfg.Analysis.Confidence = defaults.Analysis.Confidence
	}
	if cfg.Analysis.MaxCIWidth == 0 {
		cfg.Analysis.MaxCIWidth = defaults.Analysis.MaxCIWidth
	}
	if cfg.Analysis.MinCount == 0 {
		cfg.Analysis.MinCount = defaults.Analysis.MinCount
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return &cfg, nil
}

// Save writes the configuration to path
func Save(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file at path if none exists.
// It reports whether a file was written.
func CreateExample(path string) (bool, error) {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return false, nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	if dir, err := GetConfigDir(); err == nil {
		example.History.Path = filepath.Join(dir, DefaultHistoryFile)
	}

	if err := Save(path, &example); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks that the config values are usable
func (c *Config) Validate() error {
	if c.History.Backend != store.BackendJSON && c.History.Backend != store.BackendSQLite {
		return fmt.Errorf("history.backend must be %q or %q, got %q", store.BackendJSON, store.BackendSQLite, c.History.Backend)
	}
	if c.History.Path == "" {
		return errors.New("history.path is required")
	}

	if err := c.Analysis.Params().Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Params converts the analysis section into estimator parameters
func (a AnalysisConfig) Params() analysis.Params {
	return analysis.Params{
		BucketWidth: a.BucketWidth,
		Confidence:  a.Confidence,
		MaxCIWidth:  a.MaxCIWidth,
		MinCount:    a.MinCount,
	}
}

// DefaultPath returns the path to the config file, ~/.zone2/config.yaml
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".zone2"), nil
}
