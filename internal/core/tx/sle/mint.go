package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"

// Mint is the unit-ledger denomination object of an asset.
type Mint struct {
	Asset     [32]byte `codec:"asset"`
	Creator   [20]byte `codec:"creator"`
	Authority [20]byte `codec:"authority"`
	Decimals  uint8    `codec:"decimals"`

	// Supply counts units currently outstanding in holdings.
	Supply uint64 `codec:"supply"`
}

// ParseMint decodes a Mint entry.
func ParseMint(data []byte) (*Mint, error) {
	var m Mint
	if err := decodeEntry(data, entry.TypeMint, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SerializeMint encodes a Mint entry.
func SerializeMint(m *Mint) ([]byte, error) {
	return encodeEntry(entry.TypeMint, m)
}
