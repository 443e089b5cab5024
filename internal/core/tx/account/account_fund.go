package account

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

func init() {
	tx.Register(tx.TypeAccountFund, func() tx.Transaction {
		return &AccountFund{BaseTx: *tx.NewBaseTx(tx.TypeAccountFund, "")}
	})
}

// ErrFundAmount is returned for a fund request of zero.
var ErrFundAmount = errors.New("temBAD_AMOUNT: Amount must be positive")

// AccountFund issues new base currency to Account, creating the account
// root when needed. Only administrators may submit it.
type AccountFund struct {
	tx.BaseTx

	// Amount is the base currency to issue
	Amount uint64 `json:"Amount,string"`
}

// NewAccountFund creates a new AccountFund transaction
func NewAccountFund(account string, amount uint64) *AccountFund {
	return &AccountFund{
		BaseTx: *tx.NewBaseTx(tx.TypeAccountFund, account),
		Amount: amount,
	}
}

// TxType returns the transaction type
func (f *AccountFund) TxType() tx.Type {
	return tx.TypeAccountFund
}

// ProvisionsSource reports that the funded account may not exist yet.
func (f *AccountFund) ProvisionsSource() bool {
	return true
}

// Validate validates the AccountFund transaction
func (f *AccountFund) Validate() error {
	if err := f.BaseTx.Validate(); err != nil {
		return err
	}
	if f.Amount == 0 {
		return ErrFundAmount
	}
	return nil
}

// Apply credits the account and records the issuance.
func (f *AccountFund) Apply(ctx *tx.ApplyContext) tx.Result {
	info, err := sle.ReadLedgerInfo(ctx.View)
	if err != nil {
		return tx.TefINTERNAL
	}
	if info.TotalCoins, err = amount.Add(info.TotalCoins, f.Amount); err != nil {
		return tx.TecOVERFLOW
	}

	created, err := ctx.Currency.Credit(ctx.AccountID, f.Amount)
	if errors.Is(err, amount.ErrOverflow) {
		return tx.TecOVERFLOW
	}
	if err != nil {
		return tx.TefINTERNAL
	}

	if err := sle.PutLedgerInfo(ctx.View, info); err != nil {
		return tx.TefINTERNAL
	}

	ctx.Log.Info().
		Uint64("amount", f.Amount).
		Bool("created", created).
		Msg("account funded")
	return tx.TesSUCCESS
}
