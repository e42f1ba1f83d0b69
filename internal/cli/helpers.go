package cli

import (
	"os"
	"strings"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/config"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration from the --config flag path or the
// default location, then applies CLI-level overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get default config path")
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	return cfg, nil
}

// actionInput reads a GitHub Actions style input variable: the flag name
// upper-cased with dashes replaced by underscores, prefixed with INPUT_
// (e.g. "asset-path" -> INPUT_ASSET_PATH).
func actionInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return strings.TrimSpace(os.Getenv(key))
}
