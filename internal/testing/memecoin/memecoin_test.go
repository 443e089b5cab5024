package memecoin_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/currency"
	memecointx "github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/mocks"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"
	jtx "github.com/LeJamon/goMemeLedger/internal/testing"
	"github.com/LeJamon/goMemeLedger/internal/testing/memecoin"
)

// setup funds a creator and a trader and registers "Doge" at price.
func setup(t *testing.T, price uint64) (*jtx.TestEnv, *jtx.Account, *jtx.Account) {
	t.Helper()
	env := jtx.NewTestEnv(t)
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env.Fund(alice, bob)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Doge").Price(price).Build()))
	return env, alice, bob
}

func TestCreate(t *testing.T) {
	env := jtx.NewTestEnv(t)
	alice := jtx.NewAccount("alice")
	env.Fund(alice)

	result := env.Submit(memecoin.Create(alice, "Doge").
		Symbol("DOGE").
		URI("https://example.com/doge.json").
		Decimals(6).
		InitialSupply(21_000_000).
		Price(5).
		Build())
	jtx.RequireTxSuccess(t, result)

	rec := env.Asset("Doge")
	require.NotNil(t, rec)
	assert.Equal(t, alice.ID, rec.Creator)
	assert.Equal(t, "DOGE", rec.Symbol)
	assert.Equal(t, "https://example.com/doge.json", rec.URI)
	assert.Equal(t, uint8(6), rec.Decimals)
	assert.Equal(t, uint64(21_000_000), rec.TotalSupply)
	assert.Equal(t, uint64(5), rec.PricePerUnit)
	assert.True(t, rec.IsActive)
	assert.Zero(t, rec.TotalVolume)
	assert.Equal(t, uint32(1), rec.HoldersCount)

	// The authority is reproducible from the domain tag and the name alone.
	token, err := authority.Reconstruct(env.Config().Seeds("Doge"), rec.Bump)
	require.NoError(t, err)
	assert.Equal(t, rec.Authority, token.Identity())
	derived, err := authority.Derive(env.Config().Seeds("Doge"))
	require.NoError(t, err)
	assert.Equal(t, rec.Bump, derived.Bump())

	// The mint exists and is empty; record and mint are owned by the creator.
	assert.Zero(t, env.Supply("Doge"))
	assert.Equal(t, uint32(2), env.OwnerCount(alice))

	nodes := map[string]string{}
	for _, n := range result.Metadata.AffectedNodes {
		nodes[n.LedgerEntryType] = n.NodeType
	}
	assert.Equal(t, map[string]string{
		"AccountRoot": "ModifiedNode",
		"AssetRecord": "CreatedNode",
		"Mint":        "CreatedNode",
		"LedgerInfo":  "ModifiedNode",
	}, nodes)
}

func TestCreateDuplicate(t *testing.T) {
	env, alice, bob := setup(t, 5)

	result := env.Submit(memecoin.Create(bob, "Doge").Price(1).Build())
	jtx.RequireTxFail(t, result, "tecDUPLICATE")

	rec := env.Asset("Doge")
	assert.Equal(t, alice.ID, rec.Creator)
	assert.Equal(t, uint64(5), rec.PricePerUnit)
	assert.Zero(t, env.OwnerCount(bob))

	// Names are case sensitive.
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(bob, "doge").Build()))
}

func TestCreateUnknownAccount(t *testing.T) {
	env := jtx.NewTestEnv(t)
	carol := jtx.NewAccount("carol")

	jtx.RequireTxFail(t, env.Submit(memecoin.Create(carol, "Doge").Build()), "terNO_ACCOUNT")
	assert.Nil(t, env.Asset("Doge"))
}

func TestCreateValidation(t *testing.T) {
	env := jtx.NewTestEnv(t)
	alice := jtx.NewAccount("alice")
	env.Fund(alice)

	tests := []struct {
		name    string
		builder *memecoin.CreateBuilder
		code    string
	}{
		{"empty name", memecoin.Create(alice, ""), "temMALFORMED"},
		{"name too long", memecoin.Create(alice, strings.Repeat("n", 51)), "temMALFORMED"},
		// 26 characters, 52 bytes
		{"name length counts bytes", memecoin.Create(alice, strings.Repeat("é", 26)), "temMALFORMED"},
		{"symbol too long", memecoin.Create(alice, "Doge").Symbol(strings.Repeat("S", 11)), "temMALFORMED"},
		{"uri too long", memecoin.Create(alice, "Doge").URI(strings.Repeat("u", 201)), "temMALFORMED"},
		{"too many decimals", memecoin.Create(alice, "Doge").Decimals(10), "temBAD_DECIMALS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jtx.RequireTxFail(t, env.Submit(tt.builder.Build()), tt.code)
		})
	}
	assert.Equal(t, uint64(1), env.TxCount())

	// Upper bounds are inclusive.
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, strings.Repeat("n", 50)).
		Symbol(strings.Repeat("S", 10)).
		URI(strings.Repeat("u", 200)).
		Decimals(9).
		Build()))
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Zero").Decimals(0).Build()))
}

func TestWorkedExamples(t *testing.T) {
	t.Run("1000 units at 5", func(t *testing.T) {
		env, alice, bob := setup(t, 5)

		buy := env.Submit(memecoin.Buy(bob, "Doge", 1000).Build())
		jtx.RequireTxSuccess(t, buy)
		assert.Equal(t, &tx.TradeResult{Asset: "Doge", Units: 1000, Gross: 5000, Net: 5000}, buy.Metadata.Trade)
		jtx.RequireBalance(t, env, bob, jtx.DefaultFunding-5000)
		jtx.RequireBalance(t, env, alice, jtx.DefaultFunding+5000)
		jtx.RequireUnits(t, env, bob, "Doge", 1000)
		jtx.RequireVolume(t, env, "Doge", 5000)
		assert.Equal(t, uint64(1000), env.Supply("Doge"))

		sell := env.Submit(memecoin.Sell(bob, "Doge", 1000).Build())
		jtx.RequireTxSuccess(t, sell)
		assert.Equal(t, &tx.TradeResult{Asset: "Doge", Units: 1000, Gross: 5000, Net: 4750, Fee: 250}, sell.Metadata.Trade)
		jtx.RequireBalance(t, env, bob, jtx.DefaultFunding-250)
		jtx.RequireBalance(t, env, alice, jtx.DefaultFunding+250)
		jtx.RequireUnits(t, env, bob, "Doge", 0)
		jtx.RequireVolume(t, env, "Doge", 9750)
		assert.Zero(t, env.Supply("Doge"))
	})

	t.Run("3 units at 7", func(t *testing.T) {
		env, alice, bob := setup(t, 7)

		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 3).Build()))
		jtx.RequireVolume(t, env, "Doge", 21)

		sell := env.Submit(memecoin.Sell(bob, "Doge", 3).Build())
		jtx.RequireTxSuccess(t, sell)
		// floor(21 * 95 / 100) = floor(19.95)
		assert.Equal(t, uint64(19), sell.Metadata.Trade.Net)
		jtx.RequireVolume(t, env, "Doge", 40)
		jtx.RequireBalance(t, env, bob, jtx.DefaultFunding-2)
		jtx.RequireBalance(t, env, alice, jtx.DefaultFunding+2)
	})
}

func TestBuyProvisionsHolding(t *testing.T) {
	env, _, bob := setup(t, 1)
	assert.False(t, env.HasHolding(bob, "Doge"))

	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 1).Build()))
	assert.True(t, env.HasHolding(bob, "Doge"))
	assert.Equal(t, uint32(1), env.OwnerCount(bob))

	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 1).Build()))
	assert.Equal(t, uint32(1), env.OwnerCount(bob))

	// Selling everything keeps the holding.
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Sell(bob, "Doge", 2).Build()))
	assert.True(t, env.HasHolding(bob, "Doge"))

	// Trades never touch the declared supply or the holder count.
	rec := env.Asset("Doge")
	assert.Equal(t, uint64(1_000_000), rec.TotalSupply)
	assert.Equal(t, uint32(1), rec.HoldersCount)
}

func TestCreatorTradesOwnAsset(t *testing.T) {
	env, alice, _ := setup(t, 5)

	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(alice, "Doge", 10).Build()))
	jtx.RequireBalance(t, env, alice, jtx.DefaultFunding)
	jtx.RequireUnits(t, env, alice, "Doge", 10)
	jtx.RequireVolume(t, env, "Doge", 50)

	jtx.RequireTxSuccess(t, env.Submit(memecoin.Sell(alice, "Doge", 10).Build()))
	jtx.RequireBalance(t, env, alice, jtx.DefaultFunding)
	jtx.RequireVolume(t, env, "Doge", 97)
}

func TestPriceDeterminism(t *testing.T) {
	env := jtx.NewTestEnv(t)
	faker := gofakeit.New(7)

	creator := jtx.NewAccount("creator")
	env.Fund(creator)

	for i := 0; i < 25; i++ {
		name := faker.LetterN(8)
		price := uint64(faker.UintRange(1, 10_000))
		qty := uint64(faker.UintRange(1, 10_000))
		buyer := jtx.NewAccount(name + "-buyer")
		env.FundAmount(buyer, price*qty)

		jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(creator, name).Price(price).Build()))
		before := env.Balance(creator)
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(buyer, name, qty).Build()))

		jtx.RequireBalance(t, env, buyer, 0)
		jtx.RequireBalance(t, env, creator, before+price*qty)
		jtx.RequireVolume(t, env, name, price*qty)
	}
}

func TestVolumeMonotonic(t *testing.T) {
	env, _, bob := setup(t, 3)
	faker := gofakeit.New(11)

	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 10).Build()))
	volume := uint64(30)
	held := uint64(10)
	for i := 0; i < 50; i++ {
		qty := uint64(faker.UintRange(1, 100))
		var result jtx.TxResult
		if faker.Bool() {
			result = env.Submit(memecoin.Buy(bob, "Doge", qty).Build())
		} else {
			result = env.Submit(memecoin.Sell(bob, "Doge", qty).Build())
		}

		rec := env.Asset("Doge")
		require.GreaterOrEqual(t, rec.TotalVolume, volume)
		if result.Success {
			trade := result.Metadata.Trade
			require.Equal(t, volume+trade.Net, rec.TotalVolume)
			if trade.Net == trade.Gross {
				held += qty
			} else {
				held -= qty
			}
		} else {
			// Only oversized sells fail here.
			require.Equal(t, "tecINSUFFICIENT_FUNDS", result.Code)
			require.Greater(t, qty, held)
			require.Equal(t, volume, rec.TotalVolume)
		}
		volume = rec.TotalVolume
		jtx.RequireUnits(t, env, bob, "Doge", held)
	}
}

func TestInactiveAsset(t *testing.T) {
	env := jtx.NewTestEnv(t)
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env.Fund(alice, bob)

	env.PutAsset(&sle.AssetRecord{
		Creator:      alice.ID,
		Name:         "Frozen",
		Symbol:       "ICE",
		Decimals:     9,
		PricePerUnit: 5,
		IsActive:     false,
		HoldersCount: 1,
	})
	before := env.Snapshot()

	jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Frozen", 10).Build()), "tecCOIN_NOT_ACTIVE")
	jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Frozen", 10).Build()), "tecCOIN_NOT_ACTIVE")
	jtx.RequireUnchanged(t, env, before)
}

func TestOverflow(t *testing.T) {
	t.Run("buy cost", func(t *testing.T) {
		env, _, bob := setup(t, math.MaxUint64)
		before := env.Snapshot()

		jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Doge", 2).Build()), "tecOVERFLOW")
		jtx.RequireUnchanged(t, env, before)
	})

	t.Run("sell fee", func(t *testing.T) {
		price := uint64(math.MaxUint64 / 50)
		env, _, bob := setup(t, price)
		env.FundAmount(bob, price)
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 1).Build()))
		before := env.Snapshot()

		// gross fits, gross * 95 does not
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 1).Build()), "tecOVERFLOW")
		jtx.RequireUnchanged(t, env, before)
	})

	t.Run("volume", func(t *testing.T) {
		env := jtx.NewTestEnv(t)
		alice := jtx.NewAccount("alice")
		bob := jtx.NewAccount("bob")
		env.Fund(alice, bob)
		env.PutAsset(&sle.AssetRecord{
			Creator:      alice.ID,
			Name:         "Full",
			Decimals:     9,
			PricePerUnit: 1,
			IsActive:     true,
			TotalVolume:  math.MaxUint64 - 1,
			HoldersCount: 1,
		})
		before := env.Snapshot()

		// Transfer and mint succeed before the volume update overflows.
		jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Full", 2).Build()), "tecOVERFLOW")
		jtx.RequireUnchanged(t, env, before)
	})
}

var errInjected = errors.New("injected failure")

func TestBuyAtomicity(t *testing.T) {
	env, alice, bob := setup(t, 5)
	rec := env.Asset("Doge")
	before := env.Snapshot()

	ctrl := gomock.NewController(t)
	env.WithLedgers(
		func(view sle.LedgerView) tx.CurrencyLedger {
			live := currency.New(view)
			m := mocks.NewMockCurrencyLedger(ctrl)
			m.EXPECT().Debit(bob.ID, alice.ID, uint64(50)).DoAndReturn(live.Debit).Times(1)
			return m
		},
		func(view sle.LedgerView) tx.UnitLedger {
			live := units.New(view)
			m := mocks.NewMockUnitLedger(ctrl)
			m.EXPECT().EnsureAccount(bob.ID, rec.Mint).DoAndReturn(live.EnsureAccount).Times(1)
			m.EXPECT().Mint(gomock.Any(), rec.Mint, bob.ID, uint64(10)).Return(errInjected).Times(1)
			return m
		},
	)

	result := env.Submit(memecoin.Buy(bob, "Doge", 10).Build())
	jtx.RequireTxFail(t, result, "tefINTERNAL")

	// The payment and the new holding went away with the failed mint.
	jtx.RequireUnchanged(t, env, before)
	jtx.RequireBalance(t, env, bob, jtx.DefaultFunding)
	jtx.RequireBalance(t, env, alice, jtx.DefaultFunding)
	assert.False(t, env.HasHolding(bob, "Doge"))
	jtx.RequireVolume(t, env, "Doge", 0)
}

func TestSellAtomicity(t *testing.T) {
	env, alice, bob := setup(t, 5)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 10).Build()))
	rec := env.Asset("Doge")
	before := env.Snapshot()

	ctrl := gomock.NewController(t)
	env.WithLedgers(
		func(view sle.LedgerView) tx.CurrencyLedger {
			m := mocks.NewMockCurrencyLedger(ctrl)
			m.EXPECT().Debit(alice.ID, bob.ID, uint64(47)).Return(errInjected).Times(1)
			return m
		},
		func(view sle.LedgerView) tx.UnitLedger {
			live := units.New(view)
			m := mocks.NewMockUnitLedger(ctrl)
			m.EXPECT().Burn(bob.ID, rec.Mint, uint64(10)).DoAndReturn(live.Burn).Times(1)
			return m
		},
	)

	jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 10).Build()), "tefINTERNAL")
	jtx.RequireUnchanged(t, env, before)
	jtx.RequireUnits(t, env, bob, "Doge", 10)
	jtx.RequireVolume(t, env, "Doge", 50)
}

func TestTradeFailures(t *testing.T) {
	t.Run("unknown asset", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Nope", 1).Build()), "tecOBJECT_NOT_FOUND")
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Nope", 1).Build()), "tecOBJECT_NOT_FOUND")
	})

	t.Run("zero amount", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Doge", 0).Build()), "temBAD_AMOUNT")
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 0).Build()), "temBAD_AMOUNT")
	})

	t.Run("buyer cannot pay", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		before := env.Snapshot()
		jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Doge", jtx.DefaultFunding).Build()), "tecINSUFFICIENT_FUNDS")
		jtx.RequireUnchanged(t, env, before)
	})

	t.Run("buyer spends everything", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", jtx.DefaultFunding/5).Build()))
		jtx.RequireBalance(t, env, bob, 0)
	})

	t.Run("sell without holding", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 1).Build()), "tecNO_ENTRY")
	})

	t.Run("sell more than held", func(t *testing.T) {
		env, _, bob := setup(t, 5)
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 3).Build()))
		before := env.Snapshot()
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 4).Build()), "tecINSUFFICIENT_FUNDS")
		jtx.RequireUnchanged(t, env, before)
	})

	t.Run("creator cannot cover proceeds", func(t *testing.T) {
		env := jtx.NewTestEnv(t)
		alice := jtx.NewAccount("alice")
		bob := jtx.NewAccount("bob")
		dave := jtx.NewAccount("dave")
		env.FundAmount(alice, 1)
		env.Fund(bob, dave)

		jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Doge").Price(10).Build()))
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(dave, "Pepe").Price(101).Build()))
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 10).Build()))

		// alice spends all 101
		jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(alice, "Pepe", 1).Build()))
		jtx.RequireBalance(t, env, alice, 0)

		before := env.Snapshot()
		jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 10).Build()), "tecINSUFFICIENT_FUNDS")
		jtx.RequireUnchanged(t, env, before)
	})
}

func TestReserves(t *testing.T) {
	env := jtx.NewTestEnvWithConfig(t, tx.EngineConfig{
		ReserveBase:      100,
		ReserveIncrement: 10,
		ProgramID:        jtx.TestProgramID,
	})
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")

	// Registration owns two objects: 100 + 2*10.
	env.FundAmount(alice, 119)
	jtx.RequireTxFail(t, env.Submit(memecoin.Create(alice, "Doge").Price(5).Build()), "tecINSUFFICIENT_RESERVE")
	assert.Zero(t, env.OwnerCount(alice))
	env.FundAmount(alice, 1)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Doge").Price(5).Build()))
	assert.Equal(t, uint32(2), env.OwnerCount(alice))

	// A new holding needs 100 + 10 left after paying 10.
	env.FundAmount(bob, 115)
	jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Doge", 2).Build()), "tecINSUFFICIENT_RESERVE")
	env.FundAmount(bob, 5)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 2).Build()))
	jtx.RequireBalance(t, env, bob, 110)
	assert.Equal(t, uint32(1), env.OwnerCount(bob))

	// Paying for more units cannot dip into the reserve of owned objects.
	before := env.Snapshot()
	jtx.RequireTxFail(t, env.Submit(memecoin.Buy(bob, "Doge", 1).Build()), "tecINSUFFICIENT_RESERVE")
	jtx.RequireUnchanged(t, env, before)
	env.FundAmount(bob, 5)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 1).Build()))
	jtx.RequireBalance(t, env, bob, 110)
	jtx.RequireBalance(t, env, alice, 135)

	// Neither can paying out sell proceeds. alice is left at exactly 100 + 4*10.
	env.FundAmount(alice, 5)
	jtx.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Pepe").Price(5).Build()))
	before = env.Snapshot()
	jtx.RequireTxFail(t, env.Submit(memecoin.Sell(bob, "Doge", 1).Build()), "tecINSUFFICIENT_RESERVE")
	jtx.RequireUnchanged(t, env, before)
	jtx.RequireUnits(t, env, bob, "Doge", 3)
}

func TestSubmitFromJSON(t *testing.T) {
	env, _, bob := setup(t, 5)

	parsed, err := tx.FromJSON([]byte(`{
		"TransactionType": "AssetBuy",
		"Account": "` + bob.Address + `",
		"Asset": "Doge",
		"Amount": "1000",
		"Memo": "to the moon"
	}`))
	require.NoError(t, err)
	buy, ok := parsed.(*memecointx.AssetBuy)
	require.True(t, ok)
	assert.Equal(t, uint64(1000), buy.Amount)
	assert.Equal(t, "to the moon", buy.Memo)

	jtx.RequireTxSuccess(t, env.Submit(parsed))
	jtx.RequireUnits(t, env, bob, "Doge", 1000)
}
