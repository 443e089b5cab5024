// Package memecoin provides transaction builders for asset tests.
package memecoin

import (
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
	"github.com/LeJamon/goMemeLedger/internal/testing"
)

// CreateBuilder provides a fluent interface for building AssetCreate transactions.
type CreateBuilder struct {
	account       *testing.Account
	name          string
	symbol        string
	uri           string
	decimals      uint8
	initialSupply uint64
	price         uint64
}

// Create creates a new CreateBuilder with a 9-decimal asset priced at 1.
func Create(account *testing.Account, name string) *CreateBuilder {
	return &CreateBuilder{
		account:       account,
		name:          name,
		symbol:        "MEME",
		decimals:      9,
		initialSupply: 1_000_000,
		price:         1,
	}
}

// Symbol sets the ticker symbol.
func (b *CreateBuilder) Symbol(s string) *CreateBuilder {
	b.symbol = s
	return b
}

// URI sets the metadata URI.
func (b *CreateBuilder) URI(u string) *CreateBuilder {
	b.uri = u
	return b
}

// Decimals sets the display precision.
func (b *CreateBuilder) Decimals(d uint8) *CreateBuilder {
	b.decimals = d
	return b
}

// InitialSupply sets the declared supply.
func (b *CreateBuilder) InitialSupply(n uint64) *CreateBuilder {
	b.initialSupply = n
	return b
}

// Price sets the price per unit.
func (b *CreateBuilder) Price(p uint64) *CreateBuilder {
	b.price = p
	return b
}

// Build constructs the AssetCreate transaction.
func (b *CreateBuilder) Build() *memecoin.AssetCreate {
	return memecoin.NewAssetCreate(b.account.Address, b.name, b.symbol, b.uri, b.decimals, b.initialSupply, b.price)
}

// TradeBuilder builds AssetBuy and AssetSell transactions.
type TradeBuilder struct {
	account *testing.Account
	asset   string
	amount  uint64
	memo    string
	sell    bool
}

// Buy creates a builder for buying amount units of asset.
func Buy(account *testing.Account, asset string, amount uint64) *TradeBuilder {
	return &TradeBuilder{account: account, asset: asset, amount: amount}
}

// Sell creates a builder for selling amount units of asset.
func Sell(account *testing.Account, asset string, amount uint64) *TradeBuilder {
	return &TradeBuilder{account: account, asset: asset, amount: amount, sell: true}
}

// Memo attaches a note to the transaction.
func (b *TradeBuilder) Memo(m string) *TradeBuilder {
	b.memo = m
	return b
}

// Build constructs the transaction.
func (b *TradeBuilder) Build() tx.Transaction {
	var t tx.Transaction
	if b.sell {
		t = memecoin.NewAssetSell(b.account.Address, b.asset, b.amount)
	} else {
		t = memecoin.NewAssetBuy(b.account.Address, b.asset, b.amount)
	}
	t.GetCommon().Memo = b.memo
	return t
}
