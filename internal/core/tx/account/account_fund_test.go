package account

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

func TestAccountFundValidation(t *testing.T) {
	addr := crypto.MustEncodeAddress(crypto.KeyPairFromPassphrase("alice").AccountID())

	assert.NoError(t, NewAccountFund(addr, 1).Validate())
	assert.ErrorIs(t, NewAccountFund(addr, 0).Validate(), ErrFundAmount)
	assert.ErrorIs(t, NewAccountFund("", 1).Validate(), tx.ErrMissingRequiredField)
}

func TestAccountFundCreatesAndCredits(t *testing.T) {
	store := state.NewMemory()
	engine := tx.NewEngine(store, tx.EngineConfig{})
	id := crypto.KeyPairFromPassphrase("alice").AccountID()
	addr := crypto.MustEncodeAddress(id)

	res := engine.Apply(context.Background(), NewAccountFund(addr, 1000))
	require.Equal(t, tx.TesSUCCESS, res.Result)

	res = engine.Apply(context.Background(), NewAccountFund(addr, 500))
	require.Equal(t, tx.TesSUCCESS, res.Result)

	view := tx.NewApplyStateTable(store)
	root, err := sle.ReadAccountRoot(view, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), root.Balance)

	info, err := sle.ReadLedgerInfo(view)
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), info.TotalCoins)
	assert.Equal(t, uint64(2), info.TxCount)
}

func TestAccountFundOverflow(t *testing.T) {
	store := state.NewMemory()
	engine := tx.NewEngine(store, tx.EngineConfig{})
	addr := crypto.MustEncodeAddress(crypto.KeyPairFromPassphrase("bob").AccountID())

	require.Equal(t, tx.TesSUCCESS, engine.Apply(context.Background(), NewAccountFund(addr, math.MaxUint64)).Result)

	res := engine.Apply(context.Background(), NewAccountFund(addr, 1))
	assert.Equal(t, tx.TecOVERFLOW, res.Result)

	info, err := sle.ReadLedgerInfo(tx.NewApplyStateTable(store))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), info.TotalCoins)
	assert.Equal(t, uint64(1), info.TxCount)
}
