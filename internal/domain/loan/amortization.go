package loan

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-origination-backend/pkg/money"
)

// MonthlyPayment computes the level periodic payment for a loan using the
// standard amortization formula:
//
//	r = annualRate / 12 / 100
//	r == 0: payment = principal / termMonths
//	r != 0: payment = principal * (r * (1+r)^n) / ((1+r)^n - 1)
//
// The zero-rate branch never touches the general formula, whose denominator
// would be a computed zero. All arithmetic is exact decimal; any numeric
// fault returns money.ErrNumeric rather than a truncated zero.
//
// The function is pure and deterministic and is deliberately independent of
// eligibility: a rejected request can still be quoted a hypothetical payment.
// termMonths <= 0 is rejected upstream by the validator; the guard here only
// protects against misuse.
func MonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, fmt.Errorf("%w: term of %d months", money.ErrNumeric, termMonths)
	}

	r := money.MonthlyRate(annualRate)
	if r.IsZero() {
		// Straight-line split, no compounding.
		out, err := money.Div(principal, decimal.NewFromInt(int64(termMonths)))
		if err != nil {
			return decimal.Zero, err
		}
		return money.Round(out), nil
	}

	factor, err := money.PowInt(decimal.NewFromInt(1).Add(r), termMonths)
	if err != nil {
		return decimal.Zero, err
	}
	denominator := factor.Sub(decimal.NewFromInt(1))
	payment, err := money.Div(principal.Mul(r).Mul(factor), denominator)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Round(payment), nil
}
