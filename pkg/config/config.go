// Package config provides configuration management for the release asset
// uploader. It loads YAML settings with sensible defaults and resolves the
// environment overrides (GITHUB_API_URL, GITHUB_TOKEN) once at startup.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// APIBaseURL is the release API host. Empty selects the public endpoint.
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// Token is the API credential. Prefer the GITHUB_TOKEN environment
	// variable over putting credentials in a file.
	Token string `yaml:"token,omitempty"`

	// Network settings
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	MaxConcurrent int           `yaml:"max_concurrent_uploads"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 5 * time.Minute

	// DefaultMaxConcurrent is the default maximum number of concurrent uploads.
	DefaultMaxConcurrent = 5

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// Environment variables resolved at load time.
const (
	// EnvAPIBaseURL overrides the API host.
	EnvAPIBaseURL = "GITHUB_API_URL"

	// EnvToken supplies the API credential.
	EnvToken = "GITHUB_TOKEN"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout:   DefaultHTTPTimeout,
			MaxConcurrent: DefaultMaxConcurrent,
			LogLevel:      DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults; environment overrides are applied either way.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file path %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine user config directory")
	}
	return filepath.Join(configDir, "upload-release-asset", "config.yaml"), nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout cannot be negative")
	}
	if c.Settings.MaxConcurrent < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "max_concurrent_uploads cannot be negative")
	}
	return nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.MaxConcurrent == 0 {
		c.Settings.MaxConcurrent = defaults.Settings.MaxConcurrent
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// applyEnv resolves the environment-style overrides. The API host override
// wins over the file; the token env only fills an absent file value.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.Settings.APIBaseURL = v
	}
	if c.Settings.Token == "" {
		c.Settings.Token = os.Getenv(EnvToken)
	}
}
