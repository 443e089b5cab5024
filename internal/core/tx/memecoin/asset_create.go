// Package memecoin implements fixed-price assets: registration, buys that
// mint units against base currency and sells that burn them for base
// currency minus a fee.
package memecoin

import (
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

func init() {
	tx.Register(tx.TypeAssetCreate, func() tx.Transaction {
		return &AssetCreate{BaseTx: *tx.NewBaseTx(tx.TypeAssetCreate, "")}
	})
}

// createdOwnerObjects is the number of objects a registration charges to
// the creator: the record and its mint.
const createdOwnerObjects = 2

// AssetCreate registers a new asset and provisions its mint.
type AssetCreate struct {
	tx.BaseTx

	// Name identifies the asset. It is unique and never changes.
	Name   string `json:"Name"`
	Symbol string `json:"Symbol"`
	URI    string `json:"URI,omitempty"`

	// Decimals is the display precision of the units
	Decimals uint8 `json:"Decimals"`

	// InitialSupply is recorded on the asset as its declared supply
	InitialSupply uint64 `json:"InitialSupply,string"`

	// PricePerUnit is the fixed base-currency price of one unit
	PricePerUnit uint64 `json:"PricePerUnit,string"`
}

// NewAssetCreate creates a new AssetCreate transaction
func NewAssetCreate(account, name, symbol, uri string, decimals uint8, initialSupply, pricePerUnit uint64) *AssetCreate {
	return &AssetCreate{
		BaseTx:        *tx.NewBaseTx(tx.TypeAssetCreate, account),
		Name:          name,
		Symbol:        symbol,
		URI:           uri,
		Decimals:      decimals,
		InitialSupply: initialSupply,
		PricePerUnit:  pricePerUnit,
	}
}

// TxType returns the transaction type
func (a *AssetCreate) TxType() tx.Type {
	return tx.TypeAssetCreate
}

// Validate checks field bounds. Lengths are measured in bytes.
func (a *AssetCreate) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}

	if a.Name == "" {
		return ErrNameEmpty
	}
	if len(a.Name) > sle.MaxNameLength {
		return ErrNameTooLong
	}
	if len(a.Symbol) > sle.MaxSymbolLength {
		return ErrSymbolTooLong
	}
	if len(a.URI) > sle.MaxURILength {
		return ErrURITooLong
	}
	if a.Decimals > sle.MaxDecimals {
		return ErrBadDecimals
	}
	return nil
}

// Apply registers the asset record and its mint, both owned by the creator.
func (a *AssetCreate) Apply(ctx *tx.ApplyContext) tx.Result {
	reg := registry.New(ctx.View, ctx.Config.DomainTag)
	if _, err := reg.Get(a.Name); err == nil {
		return tx.TecDUPLICATE
	}

	if result := addOwnedObjects(ctx, ctx.AccountID, createdOwnerObjects); !result.IsSuccess() {
		return result
	}

	token, err := authority.Derive(ctx.Seeds(a.Name))
	if err != nil {
		ctx.Log.Error().Err(err).Str("name", a.Name).Msg("no authority for asset")
		return tx.TecINTERNAL
	}

	assetKey := reg.Key(a.Name)
	mintID := keylet.Mint(assetKey.Key).Key

	rec := &sle.AssetRecord{
		Creator:      ctx.AccountID,
		Mint:         mintID,
		Authority:    token.Identity(),
		Name:         a.Name,
		Symbol:       a.Symbol,
		URI:          a.URI,
		Decimals:     a.Decimals,
		TotalSupply:  a.InitialSupply,
		PricePerUnit: a.PricePerUnit,
		IsActive:     true,
		TotalVolume:  0,
		HoldersCount: 1,
		Bump:         token.Bump(),
	}
	if err := reg.Create(rec); err != nil {
		return resultFor(err)
	}

	err = ctx.Units.CreateMint(mintID, &sle.Mint{
		Asset:     assetKey.Key,
		Creator:   ctx.AccountID,
		Authority: token.Identity(),
		Decimals:  a.Decimals,
	})
	if err != nil {
		return resultFor(err)
	}

	ctx.Log.Info().
		Str("name", a.Name).
		Str("symbol", a.Symbol).
		Uint64("price", a.PricePerUnit).
		Msg("asset created")
	return tx.TesSUCCESS
}
