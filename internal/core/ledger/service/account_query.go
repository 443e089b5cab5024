package service

import (
	"context"
	"errors"
	"sort"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

// AccountInfo contains account information from the ledger
type AccountInfo struct {
	Account    string `json:"Account"`
	Balance    uint64 `json:"Balance,string"`
	OwnerCount uint32 `json:"OwnerCount"`
	Flags      uint32 `json:"Flags"`

	// Reserve is the balance the account must keep for its owned objects
	Reserve uint64 `json:"Reserve,string"`

	Holdings []HoldingInfo `json:"Holdings,omitempty"`
}

// HoldingInfo is the unit balance of one asset held by an account.
type HoldingInfo struct {
	Asset string `json:"Asset"`
	Units uint64 `json:"Units,string"`
}

// GetAccount retrieves an account and, when withHoldings is set, every
// unit balance it holds.
func (s *Service) GetAccount(ctx context.Context, address string, withHoldings bool) (*AccountInfo, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	id, err := crypto.DecodeAddress(address)
	if err != nil {
		return nil, tx.ErrInvalidAccount
	}

	root, err := sle.ReadAccountRoot(s.view(), id)
	if errors.Is(err, sle.ErrEntryNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	info := &AccountInfo{
		Account:    address,
		Balance:    root.Balance,
		OwnerCount: root.OwnerCount,
		Flags:      root.Flags,
		Reserve:    s.config.Engine.AccountReserve(root.OwnerCount),
	}
	if withHoldings {
		if info.Holdings, err = s.holdings(ctx, id); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// holdings scans committed state for the holdings of owner.
func (s *Service) holdings(ctx context.Context, owner [20]byte) ([]HoldingInfo, error) {
	var found []*sle.Holding
	var scanErr error
	err := s.store.ForEach(ctx, func(_ [32]byte, data []byte) bool {
		if t, err := sle.GetEntryType(data); err != nil || t != entry.TypeHolding {
			return true
		}
		h, err := sle.ParseHolding(data)
		if err != nil {
			scanErr = err
			return false
		}
		if h.Owner == owner {
			found = append(found, h)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, scanErr
	}

	view := s.view()
	out := make([]HoldingInfo, 0, len(found))
	for _, h := range found {
		mint, err := sle.ReadMint(view, keylet.Keylet{Type: entry.TypeMint, Key: h.Mint})
		if err != nil {
			return nil, err
		}
		rec, err := sle.ReadAssetRecord(view, keylet.Keylet{Type: entry.TypeAssetRecord, Key: mint.Asset})
		if err != nil {
			return nil, err
		}
		out = append(out, HoldingInfo{Asset: rec.Name, Units: h.Balance})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out, nil
}

// Balance returns the base-currency balance of an account.
func (s *Service) Balance(ctx context.Context, address string) (uint64, error) {
	info, err := s.GetAccount(ctx, address, false)
	if err != nil {
		return 0, err
	}
	return info.Balance, nil
}

// UnitBalance returns the units of asset held by an account. An account
// that never bought the asset holds zero.
func (s *Service) UnitBalance(ctx context.Context, address, asset string) (uint64, error) {
	release, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer release()
	id, err := crypto.DecodeAddress(address)
	if err != nil {
		return 0, tx.ErrInvalidAccount
	}
	rec, err := s.getRecord(asset)
	if err != nil {
		return 0, err
	}
	return units.New(s.view()).Balance(id, rec.Mint)
}
