// Package config loads fuzzmap CLI configuration using Viper.
//
// Precedence, lowest to highest: built-in defaults, the user config file
// (~/.fuzzmap/config.toml), a project fuzzmap.toml found by walking up from
// the working directory, then FUZZMAP_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/fuzzkit/fuzzmap/errors"
)

// Config is the fuzzmap CLI configuration.
type Config struct {
	Lookup LookupConfig `mapstructure:"lookup"`
	Output OutputConfig `mapstructure:"output"`
}

// LookupConfig configures keypath resolution.
type LookupConfig struct {
	Threshold int    `mapstructure:"threshold"` // minimum similarity score, 0-100
	Separator string `mapstructure:"separator"` // keypath separator
	Scorer    string `mapstructure:"scorer"`    // similarity backend: wratio, levenshtein
}

// OutputConfig configures CLI output.
type OutputConfig struct {
	JSON bool `mapstructure:"json"` // machine-readable output
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the fuzzmap configuration, caching the result.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := validate(&config); err != nil {
		return nil, err
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing the
// usual search and environment binding.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lookup.threshold", 80)
	v.SetDefault("lookup.separator", ".")
	v.SetDefault("lookup.scorer", "wratio")

	v.SetDefault("output.json", false)
}

func validate(config *Config) error {
	if config.Lookup.Threshold < 0 || config.Lookup.Threshold > 100 {
		return errors.NewInvalidThreshold(config.Lookup.Threshold)
	}
	if config.Lookup.Separator == "" {
		return errors.New("lookup.separator must not be empty")
	}
	return nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("FUZZMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for fuzzmap.toml by walking up the directory
// tree from the working directory.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "fuzzmap.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order:
// user config < project config. Environment variables override both.
func mergeConfigFiles(v *viper.Viper) {
	var configPaths []string

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(homeDir, ".fuzzmap", "config.toml"))
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")
		if err := fileViper.ReadInConfig(); err != nil {
			continue
		}
		// MergeConfigMap keeps file values at config-file precedence, so
		// environment variables still win. Set() would outrank them.
		if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
			continue
		}
	}
}
