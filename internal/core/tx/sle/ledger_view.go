package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"

// ReadView provides read access to ledger state
type ReadView interface {
	// Read reads a ledger entry. A missing entry is (nil, nil).
	Read(k keylet.Keylet) ([]byte, error)

	// Exists checks if an entry exists
	Exists(k keylet.Keylet) (bool, error)
}

// LedgerView provides read/write access to ledger state
type LedgerView interface {
	ReadView

	// Insert adds a new entry
	Insert(k keylet.Keylet, data []byte) error

	// Update modifies an existing entry
	Update(k keylet.Keylet, data []byte) error

	// Erase removes an entry
	Erase(k keylet.Keylet) error
}

// Change is one write produced by an applied transaction. A nil Data
// erases the entry.
type Change struct {
	Key  [32]byte
	Data []byte
}
