// Package pricing computes the economics of fixed-price trades.
package pricing

import "github.com/LeJamon/goMemeLedger/internal/core/amount"

// The sell fee is expressed as the fraction of gross proceeds paid out.
// The remaining 5% stays with the creator.
const (
	SellPayoutNumerator   uint64 = 95
	SellPayoutDenominator uint64 = 100
)

// Quote is the base-currency side of a trade.
type Quote struct {
	// Gross is amount * pricePerUnit.
	Gross uint64

	// Net is what actually moves between the parties.
	Net uint64
}

// Fee is the portion of the gross amount retained by the creator.
func (q Quote) Fee() uint64 {
	return q.Gross - q.Net
}

// BuyCost returns the exact base-currency cost of buying units.
func BuyCost(units, pricePerUnit uint64) (Quote, error) {
	gross, err := amount.Mul(units, pricePerUnit)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Gross: gross, Net: gross}, nil
}

// SellProceeds returns gross and net proceeds of selling units back.
// Net is floor(gross * 95 / 100).
func SellProceeds(units, pricePerUnit uint64) (Quote, error) {
	gross, err := amount.Mul(units, pricePerUnit)
	if err != nil {
		return Quote{}, err
	}
	net, err := amount.MulDiv(gross, SellPayoutNumerator, SellPayoutDenominator)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Gross: gross, Net: net}, nil
}
