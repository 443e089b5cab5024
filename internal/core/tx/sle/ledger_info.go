package sle

import "github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"

// LedgerInfo is the singleton holding ledger-wide counters.
type LedgerInfo struct {
	// TxCount is the number of transactions applied so far.
	TxCount uint64 `codec:"tx_count"`

	// TotalCoins is the base currency created by funding.
	TotalCoins uint64 `codec:"total_coins"`
}

// ParseLedgerInfo decodes a LedgerInfo entry.
func ParseLedgerInfo(data []byte) (*LedgerInfo, error) {
	var li LedgerInfo
	if err := decodeEntry(data, entry.TypeLedgerInfo, &li); err != nil {
		return nil, err
	}
	return &li, nil
}

// SerializeLedgerInfo encodes a LedgerInfo entry.
func SerializeLedgerInfo(li *LedgerInfo) ([]byte, error) {
	return encodeEntry(entry.TypeLedgerInfo, li)
}
