package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/logging"
)

// MetricsConfig represents the [metrics] section
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled"`
	Path    string `toml:"path" mapstructure:"path"`
}

// Validate performs validation on the metrics configuration
func (m *MetricsConfig) Validate() error {
	if m.Enabled && !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("metrics path must start with '/', got %q", m.Path)
	}
	return nil
}

func validateLog(l *logging.Config) error {
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", l.Level)
	}
	switch l.Format {
	case logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q (valid options: console, json)", l.Format)
	}
}
