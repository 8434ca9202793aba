// Package money provides exact fixed-point arithmetic for currency amounts
// and percentage rates. Every computation in the loan engine goes through
// shopspring/decimal; binary floats would drift across the repeated
// multiplications of the amortization formula.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept on currency and rate values
// when they are rounded for output or persistence.
const Scale = 2

// ErrNumeric is returned for arithmetic faults (division by zero, invalid
// exponent). Calculations never substitute NaN, Inf or a silent zero.
var ErrNumeric = errors.New("numeric fault")

// maxExponent bounds (1+r)^n; terms are capped at 600 months upstream, so
// anything beyond this is a programming error, not a valid input.
const maxExponent = 10_000

// Parse converts a decimal string into an exact value.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for constants in tests and package initialization.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Div divides a by b, returning ErrNumeric when b is zero.
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: division by zero", ErrNumeric)
	}
	return a.Div(b), nil
}

// PowInt raises base to a non-negative integer exponent exactly.
func PowInt(base decimal.Decimal, n int) (decimal.Decimal, error) {
	if n < 0 || n > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: exponent %d out of range", ErrNumeric, n)
	}
	out, err := base.PowInt32(int32(n))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNumeric, err)
	}
	return out, nil
}

// MonthlyRate converts a nominal annual percentage (e.g. 12 for 12%) into
// the monthly periodic rate: annual / 12 / 100.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
}

// Round rounds to the configured currency scale.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}
