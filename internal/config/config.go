// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	StorageDir      string `json:"storage_dir,omitempty"`       // Directory backing the key-value namespace
	MaxStorageBytes int    `json:"max_storage_bytes,omitempty"` // Capacity budget for the namespace

	// Behavior
	Template         string `json:"template,omitempty"`           // Default rendering template id
	SuggestDelayMS   int    `json:"suggest_delay_ms,omitempty"`   // Suggestion debounce interval
	AutosaveDelayMS  int    `json:"autosave_delay_ms,omitempty"`  // Autosave debounce interval
	ExportDir        string `json:"export_dir,omitempty"`         // Where backups are written
	LogLevel         string `json:"log_level,omitempty"`          // zerolog level name
	Verbose          bool   `json:"verbose,omitempty"`            // Print detailed information
	PrintTimeoutSecs int    `json:"print_timeout_secs,omitempty"` // Headless print timeout
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
func (c *Config) Validate() error {
	if c.MaxStorageBytes < 0 {
		return fmt.Errorf("config error: 'max_storage_bytes' must be non-negative")
	}
	if c.SuggestDelayMS < 0 {
		return fmt.Errorf("config error: 'suggest_delay_ms' must be non-negative")
	}
	if c.AutosaveDelayMS < 0 {
		return fmt.Errorf("config error: 'autosave_delay_ms' must be non-negative")
	}
	if c.PrintTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'print_timeout_secs' must be non-negative")
	}
	if c.Template != "" {
		switch c.Template {
		case "template1", "template2", "template3":
		default:
			return fmt.Errorf("config error: unknown template %q", c.Template)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ExportDir == "" {
		result.ExportDir = defaults.ExportDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.MaxStorageBytes == 0 {
		result.MaxStorageBytes = defaults.MaxStorageBytes
	}
	if result.SuggestDelayMS == 0 {
		result.SuggestDelayMS = defaults.SuggestDelayMS
	}
	if result.AutosaveDelayMS == 0 {
		result.AutosaveDelayMS = defaults.AutosaveDelayMS
	}
	if result.PrintTimeoutSecs == 0 {
		result.PrintTimeoutSecs = defaults.PrintTimeoutSecs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultStorageDir resolves the storage directory used when neither flag nor
// config names one.
func DefaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-builder"
	}
	return filepath.Join(home, ".resume-builder")
}
