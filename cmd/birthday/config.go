// Config loading for the birthday CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "BIRTHDAYS"

	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyOutput    = "output"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# birthday CLI configuration

# Data directory holding birthdays.db (optional; overridable by --data-dir
# and BIRTHDAYS_DATA_DIR)
# data_dir:

# Output format: table, json or yaml
output: table

# Logging (written to stderr): debug, info, warn, error / text, json
log_level: warn
log_format: text
`

// flagKeys binds persistent flags to config keys. A flag set on the command
// line wins over the environment, which wins over config.yaml.
var flagKeys = map[string]string{
	cfgKeyOutput:    "output",
	cfgKeyLogLevel:  "log-level",
	cfgKeyLogFormat: "log-format",
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, types.Persistf(err, "ensure config dir")
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, types.Persistf(err, "ensure default config")
	}

	v := viper.New()
	v.SetDefault(cfgKeyOutput, render.FormatTable)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for key, flag := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("%w: read config: %w", types.ErrValidation, err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
