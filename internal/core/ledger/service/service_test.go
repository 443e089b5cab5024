package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/account"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
	"github.com/LeJamon/goMemeLedger/internal/storage/database"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb/sqldb"
)

var (
	alice = crypto.MustEncodeAddress(crypto.KeyPairFromPassphrase("alice").AccountID())
	bob   = crypto.MustEncodeAddress(crypto.KeyPairFromPassphrase("bob").AccountID())
	carol = crypto.MustEncodeAddress(crypto.KeyPairFromPassphrase("carol").AccountID())
)

func openHistory(t *testing.T) *relationaldb.Manager {
	t.Helper()
	cfg := relationaldb.SQLiteConfig(filepath.Join(t.TempDir(), "history.db"))
	repos, err := sqldb.NewRepositoryManager(cfg)
	require.NoError(t, err)
	m := relationaldb.NewManager(repos, cfg)
	require.NoError(t, m.Open(context.Background()))
	t.Cleanup(func() { _ = m.Close(context.Background()) })
	return m
}

func newTestService(t *testing.T, mutate func(*Config)) *Service {
	t.Helper()
	cfg := Config{
		Engine:       tx.EngineConfig{ProgramID: []byte("service-test")},
		Store:        state.NewMemory(),
		History:      openHistory(t),
		Metrics:      metrics.New(),
		AllowFunding: true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	svc, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })
	return svc
}

// fundedService funds alice and bob and registers Doge at price 5.
func fundedService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	svc := newTestService(t, nil)
	_, err := svc.Fund(ctx, alice, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, bob, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Register(ctx, alice, "Doge", "DOGE", "https://example.com/doge.json", 9, 1_000_000_000, 5)
	require.NoError(t, err)
	return svc
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNoStore)
}

func TestRegisterBuySell(t *testing.T) {
	ctx := context.Background()
	svc := fundedService(t)

	asset, err := svc.GetAsset(ctx, "Doge")
	require.NoError(t, err)
	assert.Equal(t, alice, asset.Creator)
	assert.Equal(t, uint64(5), asset.PricePerUnit)
	assert.True(t, asset.IsActive)
	assert.Equal(t, uint32(1), asset.HoldersCount)
	assert.Zero(t, asset.TotalVolume)

	buy, err := svc.Buy(ctx, bob, "Doge", 1000)
	require.NoError(t, err)
	assert.True(t, buy.Applied)
	assert.Len(t, buy.Hash, 64)
	require.NotNil(t, buy.Metadata.Trade)
	assert.Equal(t, uint64(5000), buy.Metadata.Trade.Gross)

	units, err := svc.UnitBalance(ctx, bob, "Doge")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), units)

	sell, err := svc.Sell(ctx, bob, "Doge", 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(4750), sell.Metadata.Trade.Net)
	assert.Equal(t, uint64(250), sell.Metadata.Trade.Fee)

	bobBalance, err := svc.Balance(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000-5000+4750), bobBalance)
	aliceBalance, err := svc.Balance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000+5000-4750), aliceBalance)

	asset, err = svc.GetAsset(ctx, "Doge")
	require.NoError(t, err)
	assert.Equal(t, uint64(9750), asset.TotalVolume)
	assert.Equal(t, uint64(1_000_000_000), asset.TotalSupply)
	assert.Zero(t, asset.Outstanding)
}

func TestSubmitErrorsMatchSentinels(t *testing.T) {
	ctx := context.Background()
	svc := fundedService(t)

	_, err := svc.Register(ctx, alice, "Doge", "DOGE", "", 9, 0, 1)
	assert.ErrorIs(t, err, ErrDuplicateAsset)

	_, err = svc.Buy(ctx, bob, "Shiba", 1)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.Buy(ctx, bob, "Doge", math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)

	res, err := svc.Buy(ctx, bob, "Doge", 1_000_000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	require.NotNil(t, res)
	assert.False(t, res.Applied)
	assert.Equal(t, tx.TecINSUFFICIENT_FUNDS, res.Result)

	_, err = svc.Buy(ctx, carol, "Doge", 1)
	assert.ErrorIs(t, err, tx.NewResultError(tx.TerNO_ACCOUNT))

	_, err = svc.Buy(ctx, bob, "Doge", 0)
	assert.ErrorIs(t, err, tx.NewResultError(tx.TemBAD_AMOUNT))
}

func TestFundingDisabled(t *testing.T) {
	svc := newTestService(t, func(c *Config) { c.AllowFunding = false })
	_, err := svc.Submit(context.Background(), account.NewAccountFund(alice, 10))
	require.ErrorIs(t, err, ErrFundingDisabled)
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, func(c *Config) {
		c.Engine.ReserveBase = 100
		c.Engine.ReserveIncrement = 10
	})
	_, err := svc.Fund(ctx, alice, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, bob, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Register(ctx, alice, "Doge", "DOGE", "", 0, 0, 2)
	require.NoError(t, err)
	_, err = svc.Register(ctx, alice, "Apu", "APU", "", 0, 0, 3)
	require.NoError(t, err)
	_, err = svc.Buy(ctx, bob, "Doge", 7)
	require.NoError(t, err)
	_, err = svc.Buy(ctx, bob, "Apu", 4)
	require.NoError(t, err)

	info, err := svc.GetAccount(ctx, bob, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000-14-12), info.Balance)
	assert.Equal(t, uint32(2), info.OwnerCount)
	assert.Equal(t, uint64(120), info.Reserve)
	assert.Equal(t, []HoldingInfo{{Asset: "Apu", Units: 4}, {Asset: "Doge", Units: 7}}, info.Holdings)

	creator, err := svc.GetAccount(ctx, alice, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), creator.OwnerCount)
	assert.Empty(t, creator.Holdings)

	_, err = svc.GetAccount(ctx, carol, false)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, err = svc.GetAccount(ctx, "nonsense", false)
	assert.ErrorIs(t, err, tx.ErrInvalidAccount)

	units, err := svc.UnitBalance(ctx, alice, "Doge")
	require.NoError(t, err)
	assert.Zero(t, units)
	_, err = svc.UnitBalance(ctx, alice, "Shiba")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	svc := fundedService(t)

	buy, err := svc.Buy(ctx, bob, "Doge", 10)
	require.NoError(t, err)
	_, err = svc.Sell(ctx, bob, "Doge", 4)
	require.NoError(t, err)

	// alice: fund, create, and both trades as the creator
	aliceTx, err := svc.AccountTx(ctx, alice, relationaldb.PageOptions{})
	require.NoError(t, err)
	require.Len(t, aliceTx.Transactions, 4)
	assert.Equal(t, "AssetSell", aliceTx.Transactions[0].TxType)
	assert.Equal(t, bob, aliceTx.Transactions[0].Account)
	assert.Equal(t, "AccountFund", aliceTx.Transactions[3].TxType)
	assert.Nil(t, aliceTx.Marker)

	bobTx, err := svc.AccountTx(ctx, bob, relationaldb.PageOptions{Forward: true, Limit: 2})
	require.NoError(t, err)
	require.Len(t, bobTx.Transactions, 2)
	assert.Equal(t, "AccountFund", bobTx.Transactions[0].TxType)
	assert.Equal(t, "AssetBuy", bobTx.Transactions[1].TxType)
	require.NotNil(t, bobTx.Marker)

	next, err := svc.AccountTx(ctx, bob, relationaldb.PageOptions{Forward: true, Limit: 2, Marker: bobTx.Marker})
	require.NoError(t, err)
	require.Len(t, next.Transactions, 1)
	assert.Equal(t, "AssetSell", next.Transactions[0].TxType)

	assetTx, err := svc.AssetTx(ctx, "Doge", relationaldb.PageOptions{Forward: true})
	require.NoError(t, err)
	require.Len(t, assetTx.Transactions, 3)
	assert.Equal(t, "AssetCreate", assetTx.Transactions[0].TxType)

	entry, err := svc.GetTransaction(ctx, buy.Hash)
	require.NoError(t, err)
	assert.Equal(t, buy.TxIndex, entry.TxIndex)
	assert.Equal(t, "tesSUCCESS", entry.Result)
	assert.Contains(t, string(entry.Tx), `"Amount":"10"`)
	assert.Contains(t, string(entry.Meta), `"Trade"`)

	_, err = svc.GetTransaction(ctx, strings.Repeat("ab", 32))
	assert.True(t, IsNotFound(err))
}

func TestRejectedTransactionsAreNotIndexed(t *testing.T) {
	ctx := context.Background()
	svc := fundedService(t)

	_, err := svc.Buy(ctx, bob, "Doge", math.MaxUint64)
	require.Error(t, err)

	bobTx, err := svc.AccountTx(ctx, bob, relationaldb.PageOptions{})
	require.NoError(t, err)
	assert.Len(t, bobTx.Transactions, 1)
}

func TestHistoryUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, func(c *Config) { c.History = nil })
	assert.False(t, svc.HistoryEnabled())

	_, err := svc.Fund(ctx, alice, 5)
	require.NoError(t, err)

	_, err = svc.AccountTx(ctx, alice, relationaldb.PageOptions{})
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
	_, err = svc.GetTransaction(ctx, "00")
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
}

// A history outage is reported in metrics; the ledger keeps the transaction.
func TestHistoryFailureDoesNotFailSubmit(t *testing.T) {
	ctx := context.Background()
	history := openHistory(t)
	m := metrics.New()
	svc := newTestService(t, func(c *Config) {
		c.History = history
		c.Metrics = m
	})
	require.NoError(t, history.Close(ctx))

	res, err := svc.Fund(ctx, alice, 5)
	require.NoError(t, err)
	assert.True(t, res.Applied)

	balance, err := svc.Balance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), balance)
	assert.Contains(t, scrape(t, m), `memeledger_history_index_total{status="error"} 1`)
}

func TestMetricsObserved(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	svc := newTestService(t, func(c *Config) { c.Metrics = m })
	_, err := svc.Fund(ctx, alice, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Fund(ctx, bob, 1_000_000)
	require.NoError(t, err)
	_, err = svc.Register(ctx, alice, "Doge", "DOGE", "", 9, 0, 5)
	require.NoError(t, err)
	_, err = svc.Buy(ctx, bob, "Doge", 1000)
	require.NoError(t, err)
	_, err = svc.Sell(ctx, bob, "Doge", 1000)
	require.NoError(t, err)
	_, err = svc.Sell(ctx, bob, "Doge", 1)
	require.Error(t, err)

	body := scrape(t, m)
	assert.Contains(t, body, `memeledger_trade_volume_total{side="buy"} 5000`)
	assert.Contains(t, body, `memeledger_trade_volume_total{side="sell"} 4750`)
	assert.Contains(t, body, `memeledger_sell_fees_total 250`)
	assert.Contains(t, body, `memeledger_transactions_total{result="tecINSUFFICIENT_FUNDS",type="AssetSell"} 1`)
	assert.Contains(t, body, `memeledger_history_index_total{status="success"} 5`)
}

func TestServerInfo(t *testing.T) {
	ctx := context.Background()
	svc := fundedService(t)

	info, err := svc.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), info.TxCount)
	assert.Equal(t, uint64(2_000_000), info.TotalCoins)
	assert.Equal(t, tx.DefaultDomainTag, info.DomainTag)
	assert.True(t, info.HistoryEnabled)
	assert.True(t, info.HistoryHealthy)
}

func TestClosedService(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	require.NoError(t, svc.Close(ctx))
	require.NoError(t, svc.Close(ctx))

	_, err := svc.Fund(ctx, alice, 1)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = svc.GetAsset(ctx, "Doge")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = svc.ServerInfo(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseWaitsForInFlightSubmits(t *testing.T) {
	ctx := context.Background()
	store, err := state.Open(state.BackendConfig{Type: database.BackendPebble, Path: t.TempDir()}, state.Options{})
	require.NoError(t, err)
	svc := newTestService(t, func(c *Config) { c.Store = store })

	var wg sync.WaitGroup
	for _, account := range []string{alice, bob, carol} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_, err := svc.Fund(ctx, account, 1)
				if errors.Is(err, ErrClosed) {
					return
				}
				if !assert.NoError(t, err) {
					return
				}
				if _, err := svc.GetAccount(ctx, account, true); err != nil && !errors.Is(err, ErrClosed) {
					assert.NoError(t, err)
					return
				}
			}
		}()
	}
	require.NoError(t, svc.Close(ctx))
	wg.Wait()

	_, err = svc.Fund(ctx, alice, 1)
	assert.ErrorIs(t, err, ErrClosed)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
