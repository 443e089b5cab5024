package sle

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
)

// ErrEntryNotFound is returned by the typed readers for missing entries.
var ErrEntryNotFound = errors.New("ledger entry not found")

func readEntry[T any](view ReadView, k keylet.Keylet, parse func([]byte) (*T, error)) (*T, error) {
	data, err := view.Read(k)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrEntryNotFound
	}
	return parse(data)
}

// putEntry inserts the entry when absent and updates it otherwise.
func putEntry(view LedgerView, k keylet.Keylet, data []byte) error {
	exists, err := view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return view.Update(k, data)
	}
	return view.Insert(k, data)
}

// ReadAccountRoot reads the account root of id.
func ReadAccountRoot(view ReadView, id [20]byte) (*AccountRoot, error) {
	return readEntry(view, keylet.Account(id), ParseAccountRoot)
}

// PutAccountRoot writes an account root, creating it if needed.
func PutAccountRoot(view LedgerView, a *AccountRoot) error {
	data, err := SerializeAccountRoot(a)
	if err != nil {
		return err
	}
	return putEntry(view, keylet.Account(a.Account), data)
}

// ReadAssetRecord reads the asset record stored under k.
func ReadAssetRecord(view ReadView, k keylet.Keylet) (*AssetRecord, error) {
	return readEntry(view, k, ParseAssetRecord)
}

// ReadMint reads the mint stored under k.
func ReadMint(view ReadView, k keylet.Keylet) (*Mint, error) {
	return readEntry(view, k, ParseMint)
}

// ReadHolding reads the holding of owner in mint.
func ReadHolding(view ReadView, mint [32]byte, owner [20]byte) (*Holding, error) {
	return readEntry(view, keylet.Holding(mint, owner), ParseHolding)
}

// PutHolding writes a holding, creating it if needed.
func PutHolding(view LedgerView, h *Holding) error {
	data, err := SerializeHolding(h)
	if err != nil {
		return err
	}
	return putEntry(view, keylet.Holding(h.Mint, h.Owner), data)
}

// ReadLedgerInfo reads the ledger info singleton. A ledger that has not
// applied anything yet has zero counters.
func ReadLedgerInfo(view ReadView) (*LedgerInfo, error) {
	li, err := readEntry(view, keylet.LedgerInfo(), ParseLedgerInfo)
	if errors.Is(err, ErrEntryNotFound) {
		return &LedgerInfo{}, nil
	}
	return li, err
}

// PutLedgerInfo writes the ledger info singleton.
func PutLedgerInfo(view LedgerView, li *LedgerInfo) error {
	data, err := SerializeLedgerInfo(li)
	if err != nil {
		return err
	}
	return putEntry(view, keylet.LedgerInfo(), data)
}
