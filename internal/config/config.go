// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StageConfig tunes one pipeline stage. Zero values mean "use defaults".
type StageConfig struct {
	RetryLimit     int `json:"retry_limit,omitempty"`     // Attempts per collaborator call (default 1)
	TimeoutSeconds int `json:"timeout_seconds,omitempty"` // Per-attempt timeout (default 30)
}

// Timeout returns the configured per-attempt timeout, or zero when unset.
func (s StageConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to user input JSON file
	Resume string `json:"resume,omitempty"` // Path to resume file (pdf, docx or txt)
	Output string `json:"output,omitempty"` // Directory to write report files into

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Verbose bool   `json:"verbose,omitempty"` // Print per-stage progress and profiles

	// Per-stage tuning, keyed by stage name.
	Stages map[string]StageConfig `json:"stages,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	for name, sc := range c.Stages {
		if sc.RetryLimit < 0 {
			return fmt.Errorf("config error: stage %q retry_limit must be non-negative", name)
		}
		if sc.TimeoutSeconds < 0 {
			return fmt.Errorf("config error: stage %q timeout_seconds must be non-negative", name)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if result.Stages == nil {
		result.Stages = defaults.Stages
	}

	return result
}
