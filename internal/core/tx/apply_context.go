package tx

import (
	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

// ApplyContext provides all the state and helpers needed to apply a transaction.
// It is passed to Appliable.Apply() instead of individual parameters.
type ApplyContext struct {
	// View provides read/write access to ledger state (the ApplyStateTable)
	View sle.LedgerView

	// AccountID is the decoded source account ID
	AccountID [20]byte

	// Config holds engine configuration (reserves, derivation seeds)
	Config EngineConfig

	// TxHash is the hash of the current transaction
	TxHash [32]byte

	// TxIndex is the position of the transaction in the ledger history
	TxIndex uint64

	// Currency and Units are the collaborator ledgers, bound to View
	Currency CurrencyLedger
	Units    UnitLedger

	// Metadata lets transactions report what they settled
	Metadata *Metadata

	Log zerolog.Logger
}

// AccountReserve calculates the total reserve required for an account with the given owner count.
func (ctx *ApplyContext) AccountReserve(ownerCount uint32) uint64 {
	return ctx.Config.AccountReserve(ownerCount)
}

// CheckReserveIncrease validates that an account can afford the reserve for
// additional owned objects. Returns TecINSUFFICIENT_RESERVE if not enough funds.
func (ctx *ApplyContext) CheckReserveIncrease(account *sle.AccountRoot, additional uint32) Result {
	owners := account.OwnerCount + additional
	if owners < account.OwnerCount || account.Balance < ctx.AccountReserve(owners) {
		return TecINSUFFICIENT_RESERVE
	}
	return TesSUCCESS
}

// Seeds returns the authority derivation seeds for an asset name.
func (ctx *ApplyContext) Seeds(name string) authority.Seeds {
	return ctx.Config.Seeds(name)
}
