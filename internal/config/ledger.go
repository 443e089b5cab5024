package config

import (
	"fmt"

	"github.com/LeJamon/goMemeLedger/internal/core/tx"
)

// maxDomainTagLength bounds the authority seed prefix.
const maxDomainTagLength = 32

// LedgerConfig represents the [ledger] section
type LedgerConfig struct {
	// DomainTag and ProgramID seed every asset authority. Changing either
	// makes existing assets unreachable.
	DomainTag string `toml:"domain_tag" mapstructure:"domain_tag"`
	ProgramID string `toml:"program_id" mapstructure:"program_id"`

	// Owner reserve, in base currency
	ReserveBase      uint64 `toml:"reserve_base" mapstructure:"reserve_base"`
	ReserveIncrement uint64 `toml:"reserve_increment" mapstructure:"reserve_increment"`
}

// Validate performs validation on the ledger configuration
func (l *LedgerConfig) Validate() error {
	if l.DomainTag == "" {
		return fmt.Errorf("domain_tag is required")
	}
	if len(l.DomainTag) > maxDomainTagLength {
		return fmt.Errorf("domain_tag must be at most %d bytes, got %d", maxDomainTagLength, len(l.DomainTag))
	}
	if l.ProgramID == "" {
		return fmt.Errorf("program_id is required")
	}
	return nil
}

// EngineConfig returns the transaction engine settings
func (l *LedgerConfig) EngineConfig() tx.EngineConfig {
	return tx.EngineConfig{
		ReserveBase:      l.ReserveBase,
		ReserveIncrement: l.ReserveIncrement,
		DomainTag:        l.DomainTag,
		ProgramID:        []byte(l.ProgramID),
	}
}
