package memecoin

import (
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/pricing"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
)

func init() {
	tx.Register(tx.TypeAssetBuy, func() tx.Transaction {
		return &AssetBuy{BaseTx: *tx.NewBaseTx(tx.TypeAssetBuy, "")}
	})
}

// AssetBuy pays Amount * price to the creator and mints Amount units to
// the buyer.
type AssetBuy struct {
	tx.BaseTx

	// Asset is the name of the asset
	Asset string `json:"Asset"`

	// Amount is the number of units to buy
	Amount uint64 `json:"Amount,string"`
}

// NewAssetBuy creates a new AssetBuy transaction
func NewAssetBuy(account, asset string, amount uint64) *AssetBuy {
	return &AssetBuy{
		BaseTx: *tx.NewBaseTx(tx.TypeAssetBuy, account),
		Asset:  asset,
		Amount: amount,
	}
}

// TxType returns the transaction type
func (b *AssetBuy) TxType() tx.Type {
	return tx.TypeAssetBuy
}

// Validate validates the AssetBuy transaction
func (b *AssetBuy) Validate() error {
	if err := b.BaseTx.Validate(); err != nil {
		return err
	}
	return validateAssetRef(b.Asset, b.Amount)
}

// Apply settles the buy.
func (b *AssetBuy) Apply(ctx *tx.ApplyContext) tx.Result {
	reg, rec, result := activeRecord(ctx, b.Asset)
	if !result.IsSuccess() {
		return result
	}

	quote, err := pricing.BuyCost(b.Amount, rec.PricePerUnit)
	if err != nil {
		return resultFor(err)
	}

	if err := ctx.Currency.Debit(ctx.AccountID, rec.Creator, quote.Gross); err != nil {
		return resultFor(err)
	}

	created, err := ctx.Units.EnsureAccount(ctx.AccountID, rec.Mint)
	if err != nil {
		return resultFor(err)
	}
	if created {
		// The new holding is owned by the buyer
		if result := addOwnedObjects(ctx, ctx.AccountID, 1); !result.IsSuccess() {
			return result
		}
	} else if result := requireReserve(ctx, ctx.AccountID); !result.IsSuccess() {
		return result
	}

	token, err := authority.Reconstruct(ctx.Seeds(rec.Name), rec.Bump)
	if err != nil {
		return resultFor(err)
	}
	if err := ctx.Units.Mint(token, rec.Mint, ctx.AccountID, b.Amount); err != nil {
		return resultFor(err)
	}

	if err := registry.ApplyVolumeDelta(rec, quote.Gross); err != nil {
		return resultFor(err)
	}
	if err := reg.Put(rec); err != nil {
		return resultFor(err)
	}

	ctx.Metadata.Trade = &tx.TradeResult{
		Asset: rec.Name,
		Units: b.Amount,
		Gross: quote.Gross,
		Net:   quote.Net,
		Fee:   quote.Fee(),
	}
	ctx.Log.Info().
		Str("asset", rec.Name).
		Uint64("units", b.Amount).
		Uint64("cost", quote.Gross).
		Msg("asset bought")
	return tx.TesSUCCESS
}
