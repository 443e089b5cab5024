package memecoin

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/currency"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"
)

// resultFor maps an error from the registry or a collaborator ledger to
// the result code of the transaction.
func resultFor(err error) tx.Result {
	switch {
	case err == nil:
		return tx.TesSUCCESS
	case errors.Is(err, registry.ErrDuplicateAsset), errors.Is(err, units.ErrMintExists):
		return tx.TecDUPLICATE
	case errors.Is(err, registry.ErrNotFound):
		return tx.TecOBJECT_NOT_FOUND
	case errors.Is(err, amount.ErrOverflow):
		return tx.TecOVERFLOW
	case errors.Is(err, currency.ErrInsufficientFunds), errors.Is(err, units.ErrInsufficientUnits):
		return tx.TecINSUFFICIENT_FUNDS
	case errors.Is(err, currency.ErrNoDestination):
		return tx.TecNO_DST
	case errors.Is(err, currency.ErrNoAccount), errors.Is(err, units.ErrNoHolding), errors.Is(err, units.ErrNoMint):
		return tx.TecNO_ENTRY
	case errors.Is(err, units.ErrBadAuthority), errors.Is(err, authority.ErrInvalidBump):
		return tx.TecNO_PERMISSION
	default:
		return tx.TefINTERNAL
	}
}

// activeRecord loads the record for name and checks that it trades.
func activeRecord(ctx *tx.ApplyContext, name string) (*registry.Registry, *sle.AssetRecord, tx.Result) {
	reg := registry.New(ctx.View, ctx.Config.DomainTag)
	rec, err := reg.Get(name)
	if err != nil {
		return nil, nil, resultFor(err)
	}
	if !rec.IsActive {
		return nil, nil, tx.TecCOIN_NOT_ACTIVE
	}
	return reg, rec, tx.TesSUCCESS
}

// addOwnedObjects charges count new owner objects to account, checking
// the reserve against its current balance.
func addOwnedObjects(ctx *tx.ApplyContext, account [20]byte, count uint32) tx.Result {
	root, err := sle.ReadAccountRoot(ctx.View, account)
	if err != nil {
		return resultFor(err)
	}
	if result := ctx.CheckReserveIncrease(root, count); !result.IsSuccess() {
		return result
	}
	root.OwnerCount += count
	if err := sle.PutAccountRoot(ctx.View, root); err != nil {
		return tx.TefINTERNAL
	}
	return tx.TesSUCCESS
}

// requireReserve checks that a debited account still covers the reserve
// for the objects it owns.
func requireReserve(ctx *tx.ApplyContext, account [20]byte) tx.Result {
	root, err := sle.ReadAccountRoot(ctx.View, account)
	if err != nil {
		return resultFor(err)
	}
	if root.Balance < ctx.AccountReserve(root.OwnerCount) {
		return tx.TecINSUFFICIENT_RESERVE
	}
	return tx.TesSUCCESS
}

func validateAssetRef(asset string, qty uint64) error {
	if asset == "" {
		return ErrAssetRequired
	}
	if len(asset) > sle.MaxNameLength {
		return ErrNameTooLong
	}
	if qty == 0 {
		return ErrAmountRequired
	}
	return nil
}
