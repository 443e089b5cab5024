package tx

import (
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/currency"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"
)

//go:generate mockgen -destination=mocks/ledgers.go -package=mocks . CurrencyLedger,UnitLedger

// CurrencyLedger moves base currency between accounts.
type CurrencyLedger interface {
	Debit(from, to [20]byte, amount uint64) error
	Credit(to [20]byte, amount uint64) (created bool, err error)
	Balance(account [20]byte) (uint64, error)
}

// UnitLedger tracks asset units per holder.
type UnitLedger interface {
	CreateMint(id [32]byte, m *sle.Mint) error
	EnsureAccount(owner [20]byte, mint [32]byte) (created bool, err error)
	Mint(token authority.Token, mint [32]byte, to [20]byte, amount uint64) error
	Burn(owner [20]byte, mint [32]byte, amount uint64) error
	Balance(owner [20]byte, mint [32]byte) (uint64, error)
}

// CurrencyFactory binds a currency ledger to the view of one transaction.
type CurrencyFactory func(view sle.LedgerView) CurrencyLedger

// UnitFactory binds a unit ledger to the view of one transaction.
type UnitFactory func(view sle.LedgerView) UnitLedger

// DefaultCurrency returns the account-root currency ledger.
func DefaultCurrency(view sle.LedgerView) CurrencyLedger {
	return currency.New(view)
}

// DefaultUnits returns the mint/holding unit ledger.
func DefaultUnits(view sle.LedgerView) UnitLedger {
	return units.New(view)
}
