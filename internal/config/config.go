// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces environment overrides, e.g.
// SCREENER_TAXONOMY_PATH overrides taxonomy_path.
const envPrefix = "SCREENER_"

// ScoreThresholds are the banding cut-offs used for display.
type ScoreThresholds struct {
	Excellent float64 `koanf:"excellent"`
	Good      float64 `koanf:"good"`
	Average   float64 `koanf:"average"`
	Poor      float64 `koanf:"poor"`
}

// Config is the application configuration. All fields have working
// defaults; a config file and environment variables both override them.
type Config struct {
	TaxonomyPath     string          `koanf:"taxonomy_path"`
	RoleProfilesPath string          `koanf:"role_profiles_path"`
	HistorySize      int             `koanf:"history_size"`
	MaxBatchFiles    int             `koanf:"max_batch_files"`
	MaxFileSizeBytes int64           `koanf:"max_file_size_bytes"`
	Verbose          bool            `koanf:"verbose"`
	ScoreThresholds  ScoreThresholds `koanf:"score_thresholds"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HistorySize:      10,
		MaxBatchFiles:    5,
		MaxFileSizeBytes: 10 * 1024 * 1024,
		ScoreThresholds: ScoreThresholds{
			Excellent: 85,
			Good:      70,
			Average:   50,
			Poor:      30,
		},
	}
}

// Load builds the configuration from defaults, then an optional config
// file (JSON or YAML by extension), then SCREENER_* environment
// variables, in increasing precedence.
func Load(path string) (Config, error) {
	cfg := Defaults()
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = kyaml.Parser()
		default:
			parser = kjson.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return cfg, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks numeric ranges and threshold ordering.
func (c *Config) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("config error: 'history_size' must be non-negative")
	}
	if c.MaxBatchFiles <= 0 {
		return fmt.Errorf("config error: 'max_batch_files' must be positive")
	}
	if c.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("config error: 'max_file_size_bytes' must be positive")
	}
	t := c.ScoreThresholds
	if !(t.Excellent > t.Good && t.Good > t.Average && t.Average > t.Poor) {
		return fmt.Errorf("config error: score thresholds must be strictly descending (excellent > good > average > poor)")
	}
	return nil
}

// Band names the threshold band a score falls into.
func (c *Config) Band(score float64) string {
	t := c.ScoreThresholds
	switch {
	case score >= t.Excellent:
		return "excellent"
	case score >= t.Good:
		return "good"
	case score >= t.Average:
		return "average"
	default:
		return "poor"
	}
}
