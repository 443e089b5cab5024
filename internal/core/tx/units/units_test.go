package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

type memView map[[32]byte][]byte

func (m memView) Read(k keylet.Keylet) ([]byte, error) { return m[k.Key], nil }

func (m memView) Exists(k keylet.Keylet) (bool, error) {
	_, ok := m[k.Key]
	return ok, nil
}

func (m memView) Insert(k keylet.Keylet, data []byte) error { m[k.Key] = data; return nil }
func (m memView) Update(k keylet.Keylet, data []byte) error { m[k.Key] = data; return nil }
func (m memView) Erase(k keylet.Keylet) error               { delete(m, k.Key); return nil }

var (
	creator = [20]byte{0xC0}
	holder  = [20]byte{0x40}
)

func setup(t *testing.T) (*Ledger, [32]byte, authority.Token) {
	t.Helper()

	token, err := authority.Derive(authority.Seeds{DomainTag: "meme_coin", Name: "DOGE"})
	require.NoError(t, err)

	asset := keylet.Asset("meme_coin", "DOGE")
	mint := keylet.Mint(asset.Key)

	l := New(memView{})
	require.NoError(t, l.CreateMint(mint.Key, &sle.Mint{
		Asset:     asset.Key,
		Creator:   creator,
		Authority: token.Identity(),
		Decimals:  9,
	}))
	return l, mint.Key, token
}

func TestCreateMintTwice(t *testing.T) {
	l, mint, token := setup(t)
	err := l.CreateMint(mint, &sle.Mint{Authority: token.Identity()})
	require.ErrorIs(t, err, ErrMintExists)
}

func TestEnsureAccount(t *testing.T) {
	l, mint, _ := setup(t)

	created, err := l.EnsureAccount(holder, mint)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = l.EnsureAccount(holder, mint)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = l.EnsureAccount(holder, [32]byte{0xFF})
	require.ErrorIs(t, err, ErrNoMint)
}

func TestMintAndBurn(t *testing.T) {
	l, mint, token := setup(t)
	_, err := l.EnsureAccount(holder, mint)
	require.NoError(t, err)

	require.NoError(t, l.Mint(token, mint, holder, 50))
	require.NoError(t, l.Burn(holder, mint, 20))

	bal, err := l.Balance(holder, mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), bal)

	supply, err := l.Supply(mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), supply)

	require.ErrorIs(t, l.Burn(holder, mint, 31), ErrInsufficientUnits)
}

func TestMintRequiresAuthority(t *testing.T) {
	l, mint, _ := setup(t)
	_, err := l.EnsureAccount(holder, mint)
	require.NoError(t, err)

	other, err := authority.Derive(authority.Seeds{DomainTag: "meme_coin", Name: "PEPE"})
	require.NoError(t, err)

	require.ErrorIs(t, l.Mint(other, mint, holder, 1), ErrBadAuthority)
	require.ErrorIs(t, l.Mint(authority.Token{}, mint, holder, 1), ErrBadAuthority)
}

func TestMintWithoutHolding(t *testing.T) {
	l, mint, token := setup(t)
	require.ErrorIs(t, l.Mint(token, mint, holder, 1), ErrNoHolding)
	require.ErrorIs(t, l.Burn(holder, mint, 1), ErrNoHolding)

	bal, err := l.Balance(holder, mint)
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func TestMintOverflow(t *testing.T) {
	l, mint, token := setup(t)
	_, err := l.EnsureAccount(holder, mint)
	require.NoError(t, err)

	require.NoError(t, l.Mint(token, mint, holder, math.MaxUint64))
	require.ErrorIs(t, l.Mint(token, mint, holder, 1), amount.ErrOverflow)
}
