package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (memeledger.toml)
// 3. Environment variables (MEMELEDGER_ prefix)
//
// An empty configPath reads DefaultConfigFile when it exists and runs on
// defaults otherwise. An explicit path must exist.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults first
	setDefaults(v)

	// 2. Load the configuration file
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadMainConfig(v, path); err != nil {
			return nil, fmt.Errorf("failed to load main config: %w", err)
		}
	}

	// 3. Set up environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Unmarshal into struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = path

	// 5. Validate the complete configuration
	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file does not exist: %s", configPath)
		}
		return configPath, nil
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}
	return "", nil
}

// loadMainConfig loads the main configuration file
func loadMainConfig(v *viper.Viper, configPath string) error {
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	return nil
}

// LoadDefaultConfig returns the configuration built from defaults and
// environment only.
func LoadDefaultConfig() (*Config, error) {
	return LoadConfig("")
}

// SaveExampleConfig writes a configuration file holding every default
func SaveExampleConfig(configPath string) error {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	return nil
}
