package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"

// Bounds on asset record display fields, in bytes.
const (
	MaxNameLength   = 50
	MaxSymbolLength = 10
	MaxURILength    = 200

	// MaxDecimals is the largest precision the unit ledger supports.
	MaxDecimals = 9
)

// AssetRecord is the configuration and running statistics of one asset.
//
// Creator, Mint, Name, Symbol, URI, Decimals, PricePerUnit, Authority and
// Bump never change after creation. Trades only touch TotalVolume.
type AssetRecord struct {
	Creator   [20]byte `codec:"creator"`
	Mint      [32]byte `codec:"mint"`
	Authority [20]byte `codec:"authority"`

	Name     string `codec:"name"`
	Symbol   string `codec:"symbol"`
	URI      string `codec:"uri"`
	Decimals uint8  `codec:"decimals"`

	// TotalSupply is the supply declared at creation. Trades do not update it.
	TotalSupply  uint64 `codec:"total_supply"`
	PricePerUnit uint64 `codec:"price_per_unit"`
	IsActive     bool   `codec:"is_active"`
	TotalVolume  uint64 `codec:"total_volume"`

	// HoldersCount starts at 1 for the creator. Trades do not update it.
	HoldersCount uint32 `codec:"holders_count"`
	Bump         uint8  `codec:"bump"`
}

// ParseAssetRecord decodes an AssetRecord entry.
func ParseAssetRecord(data []byte) (*AssetRecord, error) {
	var r AssetRecord
	if err := decodeEntry(data, entry.TypeAssetRecord, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SerializeAssetRecord encodes an AssetRecord entry.
func SerializeAssetRecord(r *AssetRecord) ([]byte, error) {
	return encodeEntry(entry.TypeAssetRecord, r)
}
