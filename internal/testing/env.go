package testing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/account"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/units"

	// registers the asset transactions
	_ "github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
)

// DefaultFunding is what Fund gives each account.
const DefaultFunding uint64 = 1_000_000

// TestProgramID seeds asset authorities in test environments.
var TestProgramID = []byte("memeledger-test-program")

// TestEnv manages a test ledger environment for transaction testing.
// It provides a simplified interface for creating accounts, funding them,
// submitting transactions, and verifying results.
type TestEnv struct {
	t        *testing.T
	store    *state.Store
	engine   *tx.Engine
	config   tx.EngineConfig
	accounts map[string]*Account
}

// NewTestEnv creates a new test environment over an empty in-memory ledger
// with no reserves.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return NewTestEnvWithConfig(t, tx.EngineConfig{ProgramID: TestProgramID})
}

// NewTestEnvWithConfig creates a test environment with a specific engine configuration.
func NewTestEnvWithConfig(t *testing.T, cfg tx.EngineConfig) *TestEnv {
	t.Helper()
	store := state.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	env := &TestEnv{
		t:        t,
		store:    store,
		accounts: make(map[string]*Account),
	}
	env.engine = tx.NewEngine(store, cfg, tx.WithLogger(zerolog.Nop()))
	env.config = env.engine.Config()
	return env
}

// WithLedgers rebuilds the engine over the same state with replaced
// collaborator ledgers, for failure injection.
func (e *TestEnv) WithLedgers(c tx.CurrencyFactory, u tx.UnitFactory) {
	e.engine = tx.NewEngine(e.store, e.config, tx.WithLedgers(c, u))
}

// Fund funds accounts with DefaultFunding each.
func (e *TestEnv) Fund(accounts ...*Account) {
	e.t.Helper()
	for _, acc := range accounts {
		e.FundAmount(acc, DefaultFunding)
	}
}

// FundAmount issues amount base currency to acc, creating it if needed.
func (e *TestEnv) FundAmount(acc *Account, amount uint64) {
	e.t.Helper()
	e.accounts[acc.Name] = acc
	result := e.Submit(account.NewAccountFund(acc.Address, amount))
	if !result.Success {
		e.t.Fatalf("Failed to fund %s: %s %s", acc, result.Code, result.Message)
	}
}

// Submit applies a transaction to the ledger.
func (e *TestEnv) Submit(transaction tx.Transaction) TxResult {
	e.t.Helper()
	return resultFromApply(e.engine.Apply(context.Background(), transaction))
}

// Balance returns the base-currency balance of an account, zero if it does not exist.
func (e *TestEnv) Balance(acc *Account) uint64 {
	e.t.Helper()
	root, err := sle.ReadAccountRoot(e.view(), acc.ID)
	if errors.Is(err, sle.ErrEntryNotFound) {
		return 0
	}
	if err != nil {
		e.t.Fatalf("Failed to read account %s: %v", acc, err)
	}
	return root.Balance
}

// OwnerCount returns the number of objects owned by acc.
func (e *TestEnv) OwnerCount(acc *Account) uint32 {
	e.t.Helper()
	root, err := sle.ReadAccountRoot(e.view(), acc.ID)
	if err != nil {
		e.t.Fatalf("Failed to read account %s: %v", acc, err)
	}
	return root.OwnerCount
}

// Exists checks whether acc has an account root.
func (e *TestEnv) Exists(acc *Account) bool {
	e.t.Helper()
	exists, err := e.store.Exists(keylet.Account(acc.ID))
	if err != nil {
		e.t.Fatalf("Failed to check account existence: %v", err)
	}
	return exists
}

// Asset returns the record of an asset, or nil if there is none.
func (e *TestEnv) Asset(name string) *sle.AssetRecord {
	e.t.Helper()
	rec, err := registry.New(e.view(), e.config.DomainTag).Get(name)
	if errors.Is(err, registry.ErrNotFound) {
		return nil
	}
	if err != nil {
		e.t.Fatalf("Failed to read asset %q: %v", name, err)
	}
	return rec
}

// Units returns the units of an asset held by acc.
func (e *TestEnv) Units(acc *Account, asset string) uint64 {
	e.t.Helper()
	rec := e.Asset(asset)
	if rec == nil {
		return 0
	}
	balance, err := units.New(e.view()).Balance(acc.ID, rec.Mint)
	if err != nil {
		e.t.Fatalf("Failed to read units of %s: %v", acc, err)
	}
	return balance
}

// Supply returns the units outstanding for an asset.
func (e *TestEnv) Supply(asset string) uint64 {
	e.t.Helper()
	rec := e.Asset(asset)
	if rec == nil {
		return 0
	}
	supply, err := units.New(e.view()).Supply(rec.Mint)
	if err != nil {
		e.t.Fatalf("Failed to read supply of %q: %v", asset, err)
	}
	return supply
}

// HasHolding reports whether acc has a unit account for the asset.
func (e *TestEnv) HasHolding(acc *Account, asset string) bool {
	e.t.Helper()
	rec := e.Asset(asset)
	if rec == nil {
		return false
	}
	exists, err := e.store.Exists(keylet.Holding(rec.Mint, acc.ID))
	if err != nil {
		e.t.Fatalf("Failed to check holding: %v", err)
	}
	return exists
}

// TxCount returns the number of applied transactions.
func (e *TestEnv) TxCount() uint64 {
	e.t.Helper()
	info, err := sle.ReadLedgerInfo(e.view())
	if err != nil {
		e.t.Fatalf("Failed to read ledger info: %v", err)
	}
	return info.TxCount
}

// PutAsset writes a record and its mint directly, bypassing AssetCreate.
// It lets tests set up states no transaction produces, such as an inactive
// asset. Mint, Authority and Bump are derived from the name.
func (e *TestEnv) PutAsset(rec *sle.AssetRecord) {
	e.t.Helper()
	token, err := authority.Derive(e.config.Seeds(rec.Name))
	if err != nil {
		e.t.Fatalf("Failed to derive authority for %q: %v", rec.Name, err)
	}
	table := tx.NewApplyStateTable(e.store)
	reg := registry.New(table, e.config.DomainTag)
	assetKey := reg.Key(rec.Name)
	rec.Mint = keylet.Mint(assetKey.Key).Key
	rec.Authority = token.Identity()
	rec.Bump = token.Bump()

	if err := reg.Create(rec); err != nil {
		e.t.Fatalf("Failed to create asset %q: %v", rec.Name, err)
	}
	err = units.New(table).CreateMint(rec.Mint, &sle.Mint{
		Asset:     assetKey.Key,
		Creator:   rec.Creator,
		Authority: rec.Authority,
		Decimals:  rec.Decimals,
	})
	if err != nil {
		e.t.Fatalf("Failed to create mint for %q: %v", rec.Name, err)
	}

	changes, _ := table.Apply()
	if err := e.store.Commit(context.Background(), changes); err != nil {
		e.t.Fatalf("Failed to commit asset %q: %v", rec.Name, err)
	}
}

// LedgerEntry returns the raw committed entry at k.
func (e *TestEnv) LedgerEntry(k keylet.Keylet) ([]byte, error) {
	return e.store.Read(k)
}

// Snapshot returns every committed entry, for comparing whole states.
func (e *TestEnv) Snapshot() map[[32]byte][]byte {
	e.t.Helper()
	out := make(map[[32]byte][]byte)
	err := e.store.ForEach(context.Background(), func(key [32]byte, data []byte) bool {
		out[key] = append([]byte(nil), data...)
		return true
	})
	if err != nil {
		e.t.Fatalf("Failed to iterate state: %v", err)
	}
	return out
}

// Config returns the engine configuration.
func (e *TestEnv) Config() tx.EngineConfig {
	return e.config
}

// GetAccount returns a funded account by name.
func (e *TestEnv) GetAccount(name string) *Account {
	return e.accounts[name]
}

// view is a read view of committed state. Nothing written to it is kept.
func (e *TestEnv) view() sle.LedgerView {
	return tx.NewApplyStateTable(e.store)
}
