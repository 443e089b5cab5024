package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/storage/compression"
	"github.com/LeJamon/goMemeLedger/internal/storage/database"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// NodeDBConfig represents the [node_db] section
// Configures the key-value store holding ledger state
type NodeDBConfig struct {
	Type string `toml:"type" mapstructure:"type"`
	Path string `toml:"path" mapstructure:"path"`

	// CacheSize is the backend block cache in megabytes
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`

	// EntryCache is the number of decoded entries kept in memory
	EntryCache int `toml:"entry_cache" mapstructure:"entry_cache"`

	// Compression is none or lz4
	Compression string `toml:"compression" mapstructure:"compression"`
}

// HistoryConfig represents the [history] section
// Transaction history is kept in SQLite or PostgreSQL
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled"`
	Driver  string `toml:"driver" mapstructure:"driver"`
	DSN     string `toml:"dsn" mapstructure:"dsn"`

	MaxOpenConns    int           `toml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	Timeout         time.Duration `toml:"timeout" mapstructure:"timeout"`

	// Connect retries
	MaxRetries int           `toml:"max_retries" mapstructure:"max_retries"`
	RetryDelay time.Duration `toml:"retry_delay" mapstructure:"retry_delay"`
}

// Validate performs validation on the NodeDB configuration
func (n *NodeDBConfig) Validate() error {
	n.Type = strings.ToLower(n.Type)
	switch n.Type {
	case database.BackendPebble, database.BackendLevelDB:
		if n.Path == "" {
			return fmt.Errorf("node_db path is required for type %s", n.Type)
		}
	case database.BackendMemory:
	default:
		return fmt.Errorf("invalid node_db type: %s (valid options: pebble, leveldb, memory)", n.Type)
	}

	if n.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", n.CacheSize)
	}
	if n.EntryCache < 0 {
		return fmt.Errorf("entry_cache must be non-negative, got %d", n.EntryCache)
	}
	if _, err := compression.Get(n.Compression); err != nil {
		return fmt.Errorf("node_db compression: %w", err)
	}
	return nil
}

// BackendConfig returns the key-value backend settings
func (n *NodeDBConfig) BackendConfig() state.BackendConfig {
	return state.BackendConfig{
		Type:      n.Type,
		Path:      n.Path,
		CacheSize: int64(n.CacheSize) << 20,
	}
}

// StoreOptions returns the state store settings
func (n *NodeDBConfig) StoreOptions() state.Options {
	return state.Options{
		CacheSize:   n.EntryCache,
		Compression: n.Compression,
	}
}

// DatabaseConfig converts the section into a relational database config
func (h *HistoryConfig) DatabaseConfig() *relationaldb.Config {
	cfg := relationaldb.NewConfig()
	cfg.Driver = h.Driver
	cfg.DSN = h.DSN
	cfg.MaxOpenConns = h.MaxOpenConns
	cfg.MaxIdleConns = h.MaxIdleConns
	cfg.ConnMaxLifetime = h.ConnMaxLifetime
	cfg.DefaultTimeout = h.Timeout
	cfg.MaxRetries = h.MaxRetries
	cfg.RetryDelay = h.RetryDelay
	if cfg.Driver == relationaldb.DriverSQLite {
		// one writer at a time
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}
	return cfg
}

// Validate performs validation on the history configuration.
// A disabled section is not checked.
func (h *HistoryConfig) Validate() error {
	if !h.Enabled {
		return nil
	}
	cfg := h.DatabaseConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.Driver = cfg.Driver
	return nil
}
