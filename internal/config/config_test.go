package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"variant": "template",
		"default_role": "Operations Manager",
		"server_addr": ":8080",
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "template", cfg.Variant)
	assert.Equal(t, "Operations Manager", cfg.DefaultRole)
	assert.Equal(t, ":8080", cfg.ServerAddr)
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

func TestValidate_UnknownVariant(t *testing.T) {
	cfg := &Config{
		Variant: "industry",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "variant")
}

func TestValidate_UnknownLogFormat(t *testing.T) {
	cfg := &Config{
		LogFormat: "xml",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{
		Resume: filepath.Join(t.TempDir(), "no-such-resume.docx"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Variant:   "general",
		LogFormat: "console",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Variant:     "general",
		DefaultRole: "Professional",
		ServerAddr:  ":8080",
		LogLevel:    "info",
	}

	partial := Config{
		Variant: "template",
		Resume:  "resume.docx",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "template", merged.Variant)
	assert.Equal(t, "resume.docx", merged.Resume)

	// Default values should fill in empty fields
	assert.Equal(t, "Professional", merged.DefaultRole)
	assert.Equal(t, ":8080", merged.ServerAddr)
	assert.Equal(t, "info", merged.LogLevel)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Variant: "general",
		Resume:  "resume.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "general", merged.Variant)
	assert.Equal(t, "resume.txt", merged.Resume)
}
