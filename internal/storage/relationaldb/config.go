package relationaldb

import (
	"fmt"
	"net/url"
	"time"
)

// Supported drivers, as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config contains database configuration settings
type Config struct {
	// Driver is sqlite or postgres
	Driver string `json:"driver" mapstructure:"driver"`

	// DSN is the connection string. For sqlite it is a file path.
	DSN string `json:"dsn" mapstructure:"dsn"`

	// Connection pool settings
	MaxOpenConns    int           `json:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`

	// DefaultTimeout bounds connect and ping
	DefaultTimeout time.Duration `json:"default_timeout" mapstructure:"default_timeout"`

	// Retry settings for the initial connection
	MaxRetries int           `json:"max_retries" mapstructure:"max_retries"`
	RetryDelay time.Duration `json:"retry_delay" mapstructure:"retry_delay"`

	EnableWALMode bool `json:"enable_wal_mode" mapstructure:"enable_wal_mode"`
}

// NewConfig creates a new Config with sensible defaults
func NewConfig() *Config {
	return &Config{
		Driver:          DriverSQLite,
		DSN:             "history.db",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		DefaultTimeout:  time.Second * 30,
		MaxRetries:      3,
		RetryDelay:      time.Millisecond * 100,
		EnableWALMode:   true,
	}
}

// SQLiteConfig creates a SQLite-specific configuration
func SQLiteConfig(dbPath string) *Config {
	config := NewConfig()
	config.Driver = DriverSQLite
	config.DSN = dbPath
	config.MaxOpenConns = 1 // SQLite limitation
	config.MaxIdleConns = 1
	return config
}

// PostgresConfig creates a PostgreSQL-specific configuration
func PostgresConfig(dsn string) *Config {
	config := NewConfig()
	config.Driver = DriverPostgres
	config.DSN = dsn
	return config
}

// Validate checks the configuration for common errors
func (c *Config) Validate() error {
	switch c.Driver {
	case "postgres", "postgresql":
		c.Driver = DriverPostgres
	case "sqlite", "sqlite3":
		c.Driver = DriverSQLite
	default:
		return fmt.Errorf("%w: %s", ErrInvalidDriver, c.Driver)
	}

	if c.DSN == "" {
		return ErrMissingDatabase
	}

	// Validate connection pool settings
	if c.MaxOpenConns < 0 {
		return ErrInvalidMaxOpenConns
	}
	if c.MaxIdleConns < 0 {
		return ErrInvalidMaxIdleConns
	}
	if c.MaxIdleConns > c.MaxOpenConns && c.MaxOpenConns > 0 {
		return ErrMaxIdleExceedsMaxOpen
	}

	if c.DefaultTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.ConnMaxLifetime < 0 {
		return ErrInvalidConnMaxLifetime
	}

	if c.MaxRetries < 0 {
		return ErrInvalidMaxRetries
	}
	if c.RetryDelay < 0 {
		return ErrInvalidRetryDelay
	}

	return nil
}

// BuildConnectionString builds the driver connection string.
func (c *Config) BuildConnectionString() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		return c.DSN, nil
	case DriverSQLite:
		return c.buildSQLiteConnectionString(), nil
	default:
		return "", fmt.Errorf("unsupported driver for connection string building: %s", c.Driver)
	}
}

// buildSQLiteConnectionString adds pragmas in the form modernc.org/sqlite reads them.
func (c *Config) buildSQLiteConnectionString() string {
	params := url.Values{}
	if c.EnableWALMode {
		params.Add("_pragma", "journal_mode(WAL)")
	}
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "synchronous(NORMAL)")
	return "file:" + c.DSN + "?" + params.Encode()
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a representation of the config with the DSN redacted for postgres.
func (c *Config) String() string {
	dsn := c.DSN
	if c.Driver == DriverPostgres {
		if u, err := url.Parse(dsn); err == nil && u.User != nil {
			u.User = url.User(u.User.Username())
			dsn = u.String()
		}
	}
	return fmt.Sprintf("Config{Driver: %s, DSN: %s}", c.Driver, dsn)
}
