package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"

// AccountRoot is a base-currency account.
type AccountRoot struct {
	Account    [20]byte `codec:"account"`
	Balance    uint64   `codec:"balance"`
	OwnerCount uint32   `codec:"owner_count"`
	Flags      uint32   `codec:"flags"`
}

// ParseAccountRoot decodes an AccountRoot entry.
func ParseAccountRoot(data []byte) (*AccountRoot, error) {
	var a AccountRoot
	if err := decodeEntry(data, entry.TypeAccountRoot, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SerializeAccountRoot encodes an AccountRoot entry.
func SerializeAccountRoot(a *AccountRoot) ([]byte, error) {
	return encodeEntry(entry.TypeAccountRoot, a)
}
