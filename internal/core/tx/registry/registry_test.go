package registry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

type mapView map[[32]byte][]byte

func (m mapView) Read(k keylet.Keylet) ([]byte, error) { return m[k.Key], nil }
func (m mapView) Exists(k keylet.Keylet) (bool, error) { _, ok := m[k.Key]; return ok, nil }
func (m mapView) Insert(k keylet.Keylet, data []byte) error {
	m[k.Key] = data
	return nil
}
func (m mapView) Update(k keylet.Keylet, data []byte) error {
	if _, ok := m[k.Key]; !ok {
		return sle.ErrEntryNotFound
	}
	m[k.Key] = data
	return nil
}
func (m mapView) Erase(k keylet.Keylet) error { delete(m, k.Key); return nil }

func record(name string) *sle.AssetRecord {
	return &sle.AssetRecord{
		Creator:      [20]byte{1},
		Name:         name,
		Symbol:       "DOGE",
		Decimals:     9,
		TotalSupply:  1000,
		PricePerUnit: 5,
		IsActive:     true,
		HoldersCount: 1,
	}
}

func TestCreateAndGet(t *testing.T) {
	reg := New(mapView{}, "meme_coin")

	require.NoError(t, reg.Create(record("Doge")))
	got, err := reg.Get("Doge")
	require.NoError(t, err)
	assert.Equal(t, record("Doge"), got)

	_, err = reg.Get("Shiba")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRejectsDuplicate(t *testing.T) {
	reg := New(mapView{}, "meme_coin")
	require.NoError(t, reg.Create(record("Doge")))

	dup := record("Doge")
	dup.PricePerUnit = 1
	assert.ErrorIs(t, reg.Create(dup), ErrDuplicateAsset)

	got, err := reg.Get("Doge")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.PricePerUnit)
}

func TestDomainTagSeparatesRecords(t *testing.T) {
	view := mapView{}
	require.NoError(t, New(view, "meme_coin").Create(record("Doge")))
	_, err := New(view, "other").Get("Doge")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut(t *testing.T) {
	reg := New(mapView{}, "meme_coin")
	assert.ErrorIs(t, reg.Put(record("Doge")), ErrNotFound)

	rec := record("Doge")
	require.NoError(t, reg.Create(rec))
	rec.TotalVolume = 42
	require.NoError(t, reg.Put(rec))

	got, err := reg.Get("Doge")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.TotalVolume)
}

func TestApplyVolumeDelta(t *testing.T) {
	rec := record("Doge")
	require.NoError(t, ApplyVolumeDelta(rec, 5000))
	require.NoError(t, ApplyVolumeDelta(rec, 4750))
	assert.Equal(t, uint64(9750), rec.TotalVolume)

	rec.TotalVolume = math.MaxUint64 - 1
	assert.ErrorIs(t, ApplyVolumeDelta(rec, 2), ErrOverflow)
	assert.Equal(t, uint64(math.MaxUint64-1), rec.TotalVolume)
}
