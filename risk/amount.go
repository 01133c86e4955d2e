// risk/amount.go
//
// Checked monetary arithmetic. Notionals arrive as wide unsigned integers
// and every intermediate product is taken at double width before division,
// so the only narrowing happens in one place, with an explicit range check.
package risk

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/rustyeddy/collateral/market"
)

// narrow converts a wide unsigned value to the signed ledger amount,
// failing if it is out of range instead of truncating.
func narrow(u uint64) (market.Amount, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrAmountOverflow, u)
	}
	return market.Amount(u), nil
}

// addChecked returns a+b, failing on signed overflow.
func addChecked(a, b market.Amount) (market.Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrAmountOverflow, a, b)
	}
	return sum, nil
}

// subChecked returns a-b, failing on signed overflow.
func subChecked(a, b market.Amount) (market.Amount, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrAmountOverflow, a, b)
	}
	return diff, nil
}

// mulDiv computes a*b/d with a 128-bit intermediate product so the
// multiplication never truncates before the division. d must be non-zero
// (checked by callers with a domain-specific error) and the quotient must
// fit in 64 bits.
func mulDiv(a, b, d uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		// bits.Div64 panics on quotient overflow; surface it as an error.
		return 0, fmt.Errorf("%w: %d * %d / %d", ErrAmountOverflow, a, b, d)
	}
	q, _ := bits.Div64(hi, lo, d)
	return q, nil
}

// addUnsigned returns a+b, failing on unsigned overflow.
func addUnsigned(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrRequirementOverflow, a, b)
	}
	return sum, nil
}
