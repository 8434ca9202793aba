package loan

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrDuplicateLoan is the persistence-layer conflict on the
	// (customer, principal, rate, term) uniqueness invariant.
	ErrDuplicateLoan = errors.New("identical loan terms already exist for this customer")
)

// FieldError names a single failed check on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed field check; validation never stops
// at the first failure so one response communicates every defect.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid loan request: " + strings.Join(msgs, "; ")
}

// ReasonCode identifies an eligibility failure for API surfacing.
type ReasonCode string

const (
	ReasonInsufficientIncome ReasonCode = "insufficient_income"
	ReasonInsufficientCredit ReasonCode = "insufficient_credit"
	// Missing profile data is a distinct failure mode, not an implicit
	// pass or fail.
	ReasonMissingIncome      ReasonCode = "missing_income"
	ReasonMissingCreditScore ReasonCode = "missing_credit_score"
)

// InsufficientData reports whether the reason stems from an incomplete
// customer profile rather than a business-rule rejection.
func (c ReasonCode) InsufficientData() bool {
	return c == ReasonMissingIncome || c == ReasonMissingCreditScore
}

// Reason is one failed eligibility check with a human-readable message.
type Reason struct {
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
}

// EligibilityError carries every failed eligibility check. It is a business
// outcome, not a system fault, and is never retried.
type EligibilityError struct {
	Reasons []Reason
}

func (e *EligibilityError) Error() string {
	msgs := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		msgs = append(msgs, r.Message)
	}
	return "customer does not qualify: " + strings.Join(msgs, "; ")
}
