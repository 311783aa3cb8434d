package payments

import "github.com/shopspring/decimal"

// MinorUnits converts a major-unit amount (e.g. dollars) to integer minor
// units (cents). Rounding happens exactly once, half away from zero at the
// cent boundary, so 10.005 becomes 1001.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
