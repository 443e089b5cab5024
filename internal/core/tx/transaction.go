package tx

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

// Common errors
var (
	ErrMissingRequiredField   = errors.New("temMALFORMED: missing required field")
	ErrInvalidTransactionType = errors.New("temUNKNOWN: invalid transaction type")
	ErrInvalidAccount         = errors.New("temBAD_SRC_ACCOUNT: invalid account")
)

// Transaction is the interface that all transaction types must implement
type Transaction interface {
	// TxType returns the transaction type
	TxType() Type

	// GetCommon returns the common transaction fields
	GetCommon() *Common

	// Validate checks if the transaction is well formed without looking at
	// ledger state. Errors are prefixed with the result code they map to,
	// e.g. "temBAD_AMOUNT: amount must be positive".
	Validate() error
}

// Appliable is implemented by transaction types that can apply themselves to ledger state.
type Appliable interface {
	Apply(ctx *ApplyContext) Result
}

// SourceProvisioner is implemented by transaction types whose source
// account may not exist before the transaction is applied.
type SourceProvisioner interface {
	ProvisionsSource() bool
}

// Common contains fields common to all transaction types
type Common struct {
	// Account is the classic address of the submitting participant.
	// Callers are authenticated before submission.
	Account         string `json:"Account"`
	TransactionType string `json:"TransactionType"`

	// Memo is an optional opaque note stored with the transaction history.
	Memo string `json:"Memo,omitempty"`
}

// Validate checks the common fields.
func (c *Common) Validate() error {
	if c.Account == "" {
		return ErrMissingRequiredField
	}
	if _, err := crypto.DecodeAddress(c.Account); err != nil {
		return ErrInvalidAccount
	}
	if _, ok := TypeFromName(c.TransactionType); !ok {
		return ErrInvalidTransactionType
	}
	return nil
}

// AccountID decodes Account.
func (c *Common) AccountID() ([20]byte, error) {
	return crypto.DecodeAddress(c.Account)
}

// BaseTx provides a base implementation for transactions
type BaseTx struct {
	Common
	txType Type
}

// TxType returns the transaction type
func (b *BaseTx) TxType() Type {
	return b.txType
}

// GetCommon returns the common transaction fields
func (b *BaseTx) GetCommon() *Common {
	return &b.Common
}

// Validate validates the base transaction
func (b *BaseTx) Validate() error {
	if err := b.Common.Validate(); err != nil {
		return err
	}
	if b.TransactionType != b.txType.String() {
		return ErrInvalidTransactionType
	}
	return nil
}

// NewBaseTx creates a new base transaction
func NewBaseTx(txType Type, account string) *BaseTx {
	return &BaseTx{
		Common: Common{
			Account:         account,
			TransactionType: txType.String(),
		},
		txType: txType,
	}
}
