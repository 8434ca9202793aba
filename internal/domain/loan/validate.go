package loan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	MinTermMonths = 1
	MaxTermMonths = 600 // 50 years
	MaxAnnualRate = 100

	DefaultAnnualRate = 20
	DefaultTermMonths = 12
)

// Request is the canonical, alias-free shape of a loan request. The HTTP
// boundary normalizes field aliases (interest_rate, customer_id, the
// loanData wrapper) before a Request is built.
type Request struct {
	CustomerID string
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	TermMonths int
}

// NewRequest builds a Request, filling defaults only for fields that are
// entirely absent (nil). An explicit value is never overridden, even one
// that validation will later reject.
func NewRequest(customerID string, principal decimal.Decimal, annualRate *decimal.Decimal, termMonths *int) Request {
	r := Request{
		CustomerID: customerID,
		Principal:  principal,
		AnnualRate: decimal.NewFromInt(DefaultAnnualRate),
		TermMonths: DefaultTermMonths,
	}
	if annualRate != nil {
		r.AnnualRate = *annualRate
	}
	if termMonths != nil {
		r.TermMonths = *termMonths
	}
	return r
}

// Validate runs every field check independently and returns all failures,
// or nil when the request is well-formed.
func (r Request) Validate() *ValidationError {
	var fields []FieldError

	if !r.Principal.IsPositive() {
		fields = append(fields, FieldError{
			Field:   "loan_amount",
			Message: "must be greater than zero",
		})
	}
	if r.TermMonths < MinTermMonths || r.TermMonths > MaxTermMonths {
		fields = append(fields, FieldError{
			Field:   "term_months",
			Message: fmt.Sprintf("must be between %d and %d", MinTermMonths, MaxTermMonths),
		})
	}
	if r.AnnualRate.IsNegative() || r.AnnualRate.GreaterThan(decimal.NewFromInt(MaxAnnualRate)) {
		fields = append(fields, FieldError{
			Field:   "annual_rate",
			Message: fmt.Sprintf("must be between 0 and %d", MaxAnnualRate),
		})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
