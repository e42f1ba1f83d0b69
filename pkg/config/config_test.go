package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.Settings.HTTPTimeout)
	assert.Equal(t, 5, cfg.Settings.MaxConcurrent)
	assert.Empty(t, cfg.Settings.APIBaseURL)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvToken, "")

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `settings:
  api_base_url: https://github.example.com/api/v3
  log_level: debug
  max_concurrent_uploads: 2`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://github.example.com/api/v3", cfg.Settings.APIBaseURL)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, 2, cfg.Settings.MaxConcurrent)
	// Unset values fall back to defaults.
	assert.Equal(t, 5*time.Minute, cfg.Settings.HTTPTimeout)
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxConcurrent, cfg.Settings.MaxConcurrent)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfigFromReader_ParseError(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings: ["))
	assert.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings:\n  max_concurrent_uploads: -1"))
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://ghe.internal/api/v3")
	t.Setenv(EnvToken, "env-token")

	t.Run("env host wins over file", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader("settings:\n  api_base_url: https://from-file"))
		require.NoError(t, err)
		assert.Equal(t, "https://ghe.internal/api/v3", cfg.Settings.APIBaseURL)
	})

	t.Run("env token fills absent file token", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader("settings: {}"))
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.Settings.Token)
	})

	t.Run("file token is kept", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader("settings:\n  token: file-token"))
		require.NoError(t, err)
		assert.Equal(t, "file-token", cfg.Settings.Token)
	})
}
