package transaction

import (
	"math"
)

// maxUnits bounds amounts so the cents conversion cannot overflow int64.
const maxUnits = float64(math.MaxInt64) / 100

// CentsFromFloat converts an amount expressed in currency units into cents,
// rounding half away from zero. Amounts must be positive and finite.
func CentsFromFloat(units float64) (int64, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return 0, ErrInvalidAmount
	}

	if units <= 0 || units > maxUnits {
		return 0, ErrInvalidAmount
	}

	cents := int64(math.Round(units * 100))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}

// Units converts an amount in cents back into currency units for display
// and chart payloads. Calculations stay in cents.
func Units(cents int64) float64 {
	return float64(cents) / 100.0
}
