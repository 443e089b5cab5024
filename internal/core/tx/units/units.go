// Package units is the asset unit ledger: mints and per-holder balances.
package units

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

var (
	ErrMintExists        = errors.New("mint already exists")
	ErrNoMint            = errors.New("mint does not exist")
	ErrNoHolding         = errors.New("holding does not exist")
	ErrBadAuthority      = errors.New("token does not authorize mint")
	ErrInsufficientUnits = errors.New("insufficient units")
)

// Ledger keeps unit balances in a view.
type Ledger struct {
	view sle.LedgerView
}

// New returns a ledger operating on view.
func New(view sle.LedgerView) *Ledger {
	return &Ledger{view: view}
}

func mintKeylet(id [32]byte) keylet.Keylet {
	return keylet.Keylet{Type: entry.TypeMint, Key: id}
}

// CreateMint stores a new mint under id. Only the holder of a token for
// m.Authority can later mint units.
func (l *Ledger) CreateMint(id [32]byte, m *sle.Mint) error {
	k := mintKeylet(id)
	exists, err := l.view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return ErrMintExists
	}

	data, err := sle.SerializeMint(m)
	if err != nil {
		return err
	}
	return l.view.Insert(k, data)
}

// EnsureAccount provisions an empty holding for owner if it has none and
// reports whether one was created.
func (l *Ledger) EnsureAccount(owner [20]byte, mint [32]byte) (bool, error) {
	if _, err := l.mint(mint); err != nil {
		return false, err
	}

	exists, err := l.view.Exists(keylet.Holding(mint, owner))
	if err != nil || exists {
		return false, err
	}

	if err := sle.PutHolding(l.view, &sle.Holding{Owner: owner, Mint: mint}); err != nil {
		return false, err
	}
	return true, nil
}

// Mint issues amt new units to the holding of to.
func (l *Ledger) Mint(token authority.Token, mint [32]byte, to [20]byte, amt uint64) error {
	m, err := l.mint(mint)
	if err != nil {
		return err
	}
	if !token.Authorizes(m.Authority) {
		return ErrBadAuthority
	}

	h, err := l.holding(mint, to)
	if err != nil {
		return err
	}

	if m.Supply, err = amount.Add(m.Supply, amt); err != nil {
		return err
	}
	if h.Balance, err = amount.Add(h.Balance, amt); err != nil {
		return err
	}
	return l.write(mint, m, h)
}

// Burn destroys amt units held by owner. The owner authorizes its own burns.
func (l *Ledger) Burn(owner [20]byte, mint [32]byte, amt uint64) error {
	m, err := l.mint(mint)
	if err != nil {
		return err
	}
	h, err := l.holding(mint, owner)
	if err != nil {
		return err
	}
	if h.Balance < amt {
		return ErrInsufficientUnits
	}

	h.Balance -= amt
	if m.Supply, err = amount.Sub(m.Supply, amt); err != nil {
		return err
	}
	return l.write(mint, m, h)
}

// Balance returns the units owner holds. An owner without a holding has zero.
func (l *Ledger) Balance(owner [20]byte, mint [32]byte) (uint64, error) {
	h, err := l.holding(mint, owner)
	if errors.Is(err, ErrNoHolding) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return h.Balance, nil
}

// Supply returns the units outstanding for mint.
func (l *Ledger) Supply(mint [32]byte) (uint64, error) {
	m, err := l.mint(mint)
	if err != nil {
		return 0, err
	}
	return m.Supply, nil
}

func (l *Ledger) mint(id [32]byte) (*sle.Mint, error) {
	m, err := sle.ReadMint(l.view, mintKeylet(id))
	if errors.Is(err, sle.ErrEntryNotFound) {
		return nil, ErrNoMint
	}
	return m, err
}

func (l *Ledger) holding(mint [32]byte, owner [20]byte) (*sle.Holding, error) {
	h, err := sle.ReadHolding(l.view, mint, owner)
	if errors.Is(err, sle.ErrEntryNotFound) {
		return nil, ErrNoHolding
	}
	return h, err
}

func (l *Ledger) write(id [32]byte, m *sle.Mint, h *sle.Holding) error {
	data, err := sle.SerializeMint(m)
	if err != nil {
		return err
	}
	if err := l.view.Update(mintKeylet(id), data); err != nil {
		return err
	}
	return sle.PutHolding(l.view, h)
}
