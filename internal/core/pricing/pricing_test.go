package pricing

import (
	"math"
	"math/big"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
)

func TestWorkedExamples(t *testing.T) {
	tests := []struct {
		name      string
		units     uint64
		price     uint64
		buyCost   uint64
		sellGross uint64
		sellNet   uint64
	}{
		{name: "price 1000 amount 5", units: 5, price: 1000, buyCost: 5000, sellGross: 5000, sellNet: 4750},
		{name: "price 3 amount 7", units: 7, price: 3, buyCost: 21, sellGross: 21, sellNet: 19},
		{name: "single unit rounds to zero fee", units: 1, price: 1, buyCost: 1, sellGross: 1, sellNet: 0},
		{name: "zero price", units: 10, price: 0, buyCost: 0, sellGross: 0, sellNet: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buy, err := BuyCost(tc.units, tc.price)
			require.NoError(t, err)
			require.Equal(t, tc.buyCost, buy.Gross)
			require.Equal(t, buy.Gross, buy.Net)
			require.Zero(t, buy.Fee())

			sell, err := SellProceeds(tc.units, tc.price)
			require.NoError(t, err)
			require.Equal(t, tc.sellGross, sell.Gross)
			require.Equal(t, tc.sellNet, sell.Net)
			require.Equal(t, tc.sellGross-tc.sellNet, sell.Fee())
		})
	}
}

func TestOverflow(t *testing.T) {
	_, err := BuyCost(math.MaxUint64, 2)
	require.ErrorIs(t, err, amount.ErrOverflow)

	_, err = SellProceeds(math.MaxUint64, 2)
	require.ErrorIs(t, err, amount.ErrOverflow)

	// gross fits but gross*95 does not
	_, err = SellProceeds(math.MaxUint64/10, 1)
	require.ErrorIs(t, err, amount.ErrOverflow)
}

func TestQuotesMatchExactArithmetic(t *testing.T) {
	faker := gofakeit.New(42)

	for i := 0; i < 500; i++ {
		units := uint64(faker.Uint32())
		price := uint64(faker.Uint32() >> 4)

		exact := new(big.Int).Mul(new(big.Int).SetUint64(units), new(big.Int).SetUint64(price))

		buy, err := BuyCost(units, price)
		require.NoError(t, err)
		require.Equal(t, exact.Uint64(), buy.Gross)

		sell, err := SellProceeds(units, price)
		wantNet := new(big.Int).Mul(exact, big.NewInt(95))
		if !wantNet.IsUint64() {
			require.ErrorIs(t, err, amount.ErrOverflow)
			continue
		}
		require.NoError(t, err)
		wantNet.Quo(wantNet, big.NewInt(100))
		require.Equal(t, wantNet.Uint64(), sell.Net)
		require.LessOrEqual(t, sell.Net, sell.Gross)
	}
}
