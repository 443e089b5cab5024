package memecoin

import (
	"github.com/LeJamon/goMemeLedger/internal/core/pricing"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
)

func init() {
	tx.Register(tx.TypeAssetSell, func() tx.Transaction {
		return &AssetSell{BaseTx: *tx.NewBaseTx(tx.TypeAssetSell, "")}
	})
}

// AssetSell burns Amount units of the seller and pays the net proceeds
// from the creator. The fee stays with the creator.
type AssetSell struct {
	tx.BaseTx

	// Asset is the name of the asset
	Asset string `json:"Asset"`

	// Amount is the number of units to sell
	Amount uint64 `json:"Amount,string"`
}

// NewAssetSell creates a new AssetSell transaction
func NewAssetSell(account, asset string, amount uint64) *AssetSell {
	return &AssetSell{
		BaseTx: *tx.NewBaseTx(tx.TypeAssetSell, account),
		Asset:  asset,
		Amount: amount,
	}
}

// TxType returns the transaction type
func (s *AssetSell) TxType() tx.Type {
	return tx.TypeAssetSell
}

// Validate validates the AssetSell transaction
func (s *AssetSell) Validate() error {
	if err := s.BaseTx.Validate(); err != nil {
		return err
	}
	return validateAssetRef(s.Asset, s.Amount)
}

// Apply settles the sell.
func (s *AssetSell) Apply(ctx *tx.ApplyContext) tx.Result {
	reg, rec, result := activeRecord(ctx, s.Asset)
	if !result.IsSuccess() {
		return result
	}

	quote, err := pricing.SellProceeds(s.Amount, rec.PricePerUnit)
	if err != nil {
		return resultFor(err)
	}

	if err := ctx.Units.Burn(ctx.AccountID, rec.Mint, s.Amount); err != nil {
		return resultFor(err)
	}
	if err := ctx.Currency.Debit(rec.Creator, ctx.AccountID, quote.Net); err != nil {
		return resultFor(err)
	}
	if result := requireReserve(ctx, rec.Creator); !result.IsSuccess() {
		return result
	}

	if err := registry.ApplyVolumeDelta(rec, quote.Net); err != nil {
		return resultFor(err)
	}
	if err := reg.Put(rec); err != nil {
		return resultFor(err)
	}

	ctx.Metadata.Trade = &tx.TradeResult{
		Asset: rec.Name,
		Units: s.Amount,
		Gross: quote.Gross,
		Net:   quote.Net,
		Fee:   quote.Fee(),
	}
	ctx.Log.Info().
		Str("asset", rec.Name).
		Uint64("units", s.Amount).
		Uint64("proceeds", quote.Net).
		Msg("asset sold")
	return tx.TesSUCCESS
}
