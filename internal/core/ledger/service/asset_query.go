package service

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

// AssetInfo is an asset record as reported to clients.
type AssetInfo struct {
	Name      string `json:"Name"`
	Symbol    string `json:"Symbol"`
	URI       string `json:"URI,omitempty"`
	Decimals  uint8  `json:"Decimals"`
	Creator   string `json:"Creator"`
	Mint      string `json:"Mint"`
	Authority string `json:"Authority"`
	Bump      uint8  `json:"Bump"`

	TotalSupply  uint64 `json:"TotalSupply,string"`
	PricePerUnit uint64 `json:"PricePerUnit,string"`
	IsActive     bool   `json:"IsActive"`
	TotalVolume  uint64 `json:"TotalVolume,string"`
	HoldersCount uint32 `json:"HoldersCount"`

	// Outstanding is the number of units currently held across all holdings
	Outstanding uint64 `json:"Outstanding,string"`
}

// GetAsset returns the record of the named asset.
func (s *Service) GetAsset(ctx context.Context, name string) (*AssetInfo, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	rec, err := s.getRecord(name)
	if err != nil {
		return nil, err
	}
	outstanding, err := units.New(s.view()).Supply(rec.Mint)
	if err != nil {
		return nil, err
	}
	return assetInfo(rec, outstanding), nil
}

func (s *Service) getRecord(name string) (*sle.AssetRecord, error) {
	rec, err := s.registry().Get(name)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, ErrAssetNotFound
	}
	return rec, err
}

func assetInfo(rec *sle.AssetRecord, outstanding uint64) *AssetInfo {
	return &AssetInfo{
		Name:         rec.Name,
		Symbol:       rec.Symbol,
		URI:          rec.URI,
		Decimals:     rec.Decimals,
		Creator:      crypto.MustEncodeAddress(rec.Creator),
		Mint:         hex.EncodeToString(rec.Mint[:]),
		Authority:    crypto.MustEncodeAddress(rec.Authority),
		Bump:         rec.Bump,
		TotalSupply:  rec.TotalSupply,
		PricePerUnit: rec.PricePerUnit,
		IsActive:     rec.IsActive,
		TotalVolume:  rec.TotalVolume,
		HoldersCount: rec.HoldersCount,
		Outstanding:  outstanding,
	}
}
