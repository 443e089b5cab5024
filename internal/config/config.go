// Package config loads the memeledgerd configuration.
package config

import (
	"path/filepath"

	"github.com/LeJamon/goMemeLedger/internal/logging"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "memeledger.toml"

// EnvPrefix prefixes environment overrides, e.g. MEMELEDGER_SERVER_RPC_PORT.
const EnvPrefix = "MEMELEDGER"

// Config represents the complete memeledgerd configuration
type Config struct {
	// 1. Server section
	Server ServerConfig `toml:"server" mapstructure:"server"`

	// 2. Ledger rules
	Ledger LedgerConfig `toml:"ledger" mapstructure:"ledger"`

	// 3. Databases
	NodeDB  NodeDBConfig  `toml:"node_db" mapstructure:"node_db"`
	History HistoryConfig `toml:"history" mapstructure:"history"`

	// 4. Diagnostics
	Log     logging.Config `toml:"log" mapstructure:"log"`
	Metrics MetricsConfig  `toml:"metrics" mapstructure:"metrics"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// GetConfigPath returns the path of the file the configuration was read
// from, or "" when only defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// ConfigPathFromDir returns the configuration file path inside a directory
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigFile)
}
