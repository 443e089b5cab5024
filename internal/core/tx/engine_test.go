package tx

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

// stubTx runs an arbitrary handler as an AccountFund transaction.
type stubTx struct {
	BaseTx
	Note      string `json:"Note,omitempty"`
	provision bool
	apply     func(ctx *ApplyContext) Result
}

func (s *stubTx) Apply(ctx *ApplyContext) Result { return s.apply(ctx) }
func (s *stubTx) ProvisionsSource() bool         { return s.provision }

func newStub(account string, provision bool, apply func(ctx *ApplyContext) Result) *stubTx {
	return &stubTx{BaseTx: *NewBaseTx(TypeAccountFund, account), provision: provision, apply: apply}
}

func testAccount(passphrase string) ([20]byte, string) {
	id := crypto.KeyPairFromPassphrase(passphrase).AccountID()
	return id, crypto.MustEncodeAddress(id)
}

func createAccount(balance uint64) func(ctx *ApplyContext) Result {
	return func(ctx *ApplyContext) Result {
		if err := sle.PutAccountRoot(ctx.View, &sle.AccountRoot{Account: ctx.AccountID, Balance: balance}); err != nil {
			return TefINTERNAL
		}
		return TesSUCCESS
	}
}

type failingStore struct {
	*state.Store
}

func (failingStore) Commit(context.Context, []sle.Change) error {
	return errors.New("disk on fire")
}

func TestEngineRejectsUnknownSource(t *testing.T) {
	store := state.NewMemory()
	engine := NewEngine(store, EngineConfig{})
	_, addr := testAccount("alice")

	res := engine.Apply(context.Background(), newStub(addr, false, createAccount(5)))
	assert.Equal(t, TerNO_ACCOUNT, res.Result)
	assert.False(t, res.Applied)

	info, err := sle.ReadLedgerInfo(NewApplyStateTable(store))
	require.NoError(t, err)
	assert.Zero(t, info.TxCount)
}

func TestEngineAppliesAndCounts(t *testing.T) {
	store := state.NewMemory()
	engine := NewEngine(store, EngineConfig{})
	id, addr := testAccount("alice")

	res := engine.Apply(context.Background(), newStub(addr, true, createAccount(5)))
	require.Equal(t, TesSUCCESS, res.Result)
	assert.True(t, res.Applied)
	assert.Zero(t, res.TxIndex)
	assert.NotEqual(t, [32]byte{}, res.Hash)

	require.NotNil(t, res.Metadata)
	assert.Equal(t, TesSUCCESS, res.Metadata.TransactionResult)
	types := map[string]string{}
	for _, n := range res.Metadata.AffectedNodes {
		types[n.LedgerEntryType] = n.NodeType
	}
	assert.Equal(t, map[string]string{"AccountRoot": "CreatedNode", "LedgerInfo": "CreatedNode"}, types)

	root, err := sle.ReadAccountRoot(NewApplyStateTable(store), id)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), root.Balance)

	// The same request again lands at the next index with a new hash.
	second := engine.Apply(context.Background(), newStub(addr, true, createAccount(6)))
	require.Equal(t, TesSUCCESS, second.Result)
	assert.Equal(t, uint64(1), second.TxIndex)
	assert.NotEqual(t, res.Hash, second.Hash)

	info, err := sle.ReadLedgerInfo(NewApplyStateTable(store))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), info.TxCount)
}

func TestEngineDiscardsFailedTransaction(t *testing.T) {
	store := state.NewMemory()
	engine := NewEngine(store, EngineConfig{})
	id, addr := testAccount("bob")

	res := engine.Apply(context.Background(), newStub(addr, true, func(ctx *ApplyContext) Result {
		require.Equal(t, TesSUCCESS, createAccount(100)(ctx))
		return TecOVERFLOW
	}))
	assert.Equal(t, TecOVERFLOW, res.Result)
	assert.False(t, res.Applied)
	assert.Equal(t, TecOVERFLOW, res.Metadata.TransactionResult)

	exists, err := store.Exists(keylet.Account(id))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = store.Exists(keylet.LedgerInfo())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngineCommitFailure(t *testing.T) {
	store := failingStore{state.NewMemory()}
	engine := NewEngine(store, EngineConfig{})
	id, addr := testAccount("carol")

	res := engine.Apply(context.Background(), newStub(addr, true, createAccount(1)))
	assert.Equal(t, TefINTERNAL, res.Result)
	assert.False(t, res.Applied)
	assert.Contains(t, res.Message, "disk on fire")

	exists, err := store.Exists(keylet.Account(id))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngineRecoversFromPanickingHandler(t *testing.T) {
	engine := NewEngine(state.NewMemory(), EngineConfig{})
	_, addr := testAccount("dave")

	res := engine.Apply(context.Background(), newStub(addr, true, func(*ApplyContext) Result {
		panic("boom")
	}))
	assert.Equal(t, TefEXCEPTION, res.Result)
	assert.False(t, res.Applied)
}

func TestEnginePreflight(t *testing.T) {
	engine := NewEngine(state.NewMemory(), EngineConfig{})
	_, addr := testAccount("erin")

	tests := []struct {
		name     string
		tx       *stubTx
		expected Result
	}{
		{"missing account", newStub("", true, createAccount(1)), TemBAD_SRC_ACCOUNT},
		{"bad address", newStub("not-an-address", true, createAccount(1)), TemBAD_SRC_ACCOUNT},
		{"type mismatch", func() *stubTx {
			s := newStub(addr, true, createAccount(1))
			s.TransactionType = "AssetBuy"
			return s
		}(), TemUNKNOWN},
		{"missing type", func() *stubTx {
			s := newStub(addr, true, createAccount(1))
			s.TransactionType = ""
			return s
		}(), TemINVALID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Apply(context.Background(), tt.tx)
			assert.Equal(t, tt.expected, res.Result)
			assert.False(t, res.Applied)
		})
	}
}

func TestParseValidationError(t *testing.T) {
	tests := []struct {
		err      error
		expected Result
	}{
		{errors.New("temBAD_AMOUNT: amount must be positive"), TemBAD_AMOUNT},
		{errors.New("temBAD_DECIMALS: too precise"), TemBAD_DECIMALS},
		{ErrMissingRequiredField, TemMALFORMED},
		{errors.New("tecOVERFLOW: not a malformed code"), TemINVALID},
		{errors.New("no prefix at all"), TemINVALID},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValidationError(tt.err))
		})
	}
}

func TestEngineDefaultsDomainTag(t *testing.T) {
	engine := NewEngine(state.NewMemory(), EngineConfig{ProgramID: []byte{1}})
	seeds := engine.Config().Seeds("DOGE")
	assert.Equal(t, DefaultDomainTag, seeds.DomainTag)
	assert.Equal(t, "DOGE", seeds.Name)
	assert.Equal(t, []byte{1}, seeds.ProgramID)
}

func TestMetadataJSON(t *testing.T) {
	meta := Metadata{
		AffectedNodes: []AffectedNode{
			{NodeType: "CreatedNode", LedgerEntryType: "Holding", LedgerIndex: "AB"},
		},
		TransactionIndex:  3,
		TransactionResult: TecOVERFLOW,
		Trade:             &TradeResult{Asset: "DOGE", Units: 1, Gross: 5, Net: 4, Fee: 1},
	}
	data, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"AffectedNodes":[{"CreatedNode":{"LedgerEntryType":"Holding","LedgerIndex":"AB"}}],
		"TransactionIndex":3,
		"TransactionResult":"tecOVERFLOW",
		"Trade":{"Asset":"DOGE","Units":"1","Gross":"5","Net":"4","Fee":"1"}
	}`, string(data))

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, meta, decoded)
}
