package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"storage_dir": "/tmp/resumes",
		"max_storage_bytes": 1048576,
		"template": "template2",
		"suggest_delay_ms": 100,
		"autosave_delay_ms": 2000,
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/resumes", cfg.StorageDir)
	assert.Equal(t, 1048576, cfg.MaxStorageBytes)
	assert.Equal(t, "template2", cfg.Template)
	assert.Equal(t, 100, cfg.SuggestDelayMS)
	assert.Equal(t, 2000, cfg.AutosaveDelayMS)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	for name, cfg := range map[string]*Config{
		"max_storage_bytes":  {MaxStorageBytes: -1},
		"suggest_delay_ms":   {SuggestDelayMS: -1},
		"autosave_delay_ms":  {AutosaveDelayMS: -1},
		"print_timeout_secs": {PrintTimeoutSecs: -1},
	} {
		t.Run(name, func(t *testing.T) {
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestValidate_UnknownTemplate(t *testing.T) {
	cfg := &Config{Template: "template9"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		StorageDir: "/custom/dir",
		Template:   "template3",
	}
	defaults := Config{
		StorageDir:       "/default/dir",
		MaxStorageBytes:  5242880,
		Template:         "template1",
		SuggestDelayMS:   150,
		AutosaveDelayMS:  1500,
		LogLevel:         "warn",
		PrintTimeoutSecs: 30,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win.
	assert.Equal(t, "/custom/dir", merged.StorageDir)
	assert.Equal(t, "template3", merged.Template)

	// Unset values fall back to defaults.
	assert.Equal(t, 5242880, merged.MaxStorageBytes)
	assert.Equal(t, 150, merged.SuggestDelayMS)
	assert.Equal(t, 1500, merged.AutosaveDelayMS)
	assert.Equal(t, "warn", merged.LogLevel)
	assert.Equal(t, 30, merged.PrintTimeoutSecs)
}
