// Package currency is the base-currency ledger: account roots and the
// transfers between them.
package currency

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

var (
	// ErrNoAccount is returned when the paying account does not exist.
	ErrNoAccount = errors.New("source account does not exist")

	// ErrNoDestination is returned when the receiving account does not exist.
	ErrNoDestination = errors.New("destination account does not exist")

	// ErrInsufficientFunds is returned when the payer cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ledger moves base currency between account roots stored in a view.
type Ledger struct {
	view sle.LedgerView
}

// New returns a ledger operating on view.
func New(view sle.LedgerView) *Ledger {
	return &Ledger{view: view}
}

// Balance returns the balance of account.
func (l *Ledger) Balance(account [20]byte) (uint64, error) {
	root, err := l.account(account, ErrNoAccount)
	if err != nil {
		return 0, err
	}
	return root.Balance, nil
}

// Debit moves amount from one account to another. Both accounts must exist.
func (l *Ledger) Debit(from, to [20]byte, amt uint64) error {
	payer, err := l.account(from, ErrNoAccount)
	if err != nil {
		return err
	}
	if payer.Balance < amt {
		return ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	payee, err := l.account(to, ErrNoDestination)
	if err != nil {
		return err
	}
	credited, err := amount.Add(payee.Balance, amt)
	if err != nil {
		return err
	}

	payer.Balance -= amt
	payee.Balance = credited

	if err := sle.PutAccountRoot(l.view, payer); err != nil {
		return err
	}
	return sle.PutAccountRoot(l.view, payee)
}

// Credit adds newly issued currency to account, creating its root when it
// does not exist yet. It reports whether the account was created.
func (l *Ledger) Credit(to [20]byte, amt uint64) (bool, error) {
	root, err := sle.ReadAccountRoot(l.view, to)
	created := false
	switch {
	case errors.Is(err, sle.ErrEntryNotFound):
		root = &sle.AccountRoot{Account: to}
		created = true
	case err != nil:
		return false, err
	}

	balance, err := amount.Add(root.Balance, amt)
	if err != nil {
		return false, err
	}
	root.Balance = balance

	return created, sle.PutAccountRoot(l.view, root)
}

func (l *Ledger) account(id [20]byte, missing error) (*sle.AccountRoot, error) {
	root, err := sle.ReadAccountRoot(l.view, id)
	if errors.Is(err, sle.ErrEntryNotFound) {
		return nil, missing
	}
	return root, err
}
