package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"

// Holding is one holder's unit balance for a mint.
type Holding struct {
	Owner   [20]byte `codec:"owner"`
	Mint    [32]byte `codec:"mint"`
	Balance uint64   `codec:"balance"`
}

// ParseHolding decodes a Holding entry.
func ParseHolding(data []byte) (*Holding, error) {
	var h Holding
	if err := decodeEntry(data, entry.TypeHolding, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// SerializeHolding encodes a Holding entry.
func SerializeHolding(h *Holding) ([]byte, error) {
	return encodeEntry(entry.TypeHolding, h)
}
