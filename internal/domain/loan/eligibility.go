package loan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MinCreditScore is the inclusive qualifying threshold.
	MinCreditScore = 500
	// IncomeMultiple: annual income must cover this multiple of the
	// requested principal.
	IncomeMultiple = 2
)

// Applicant is the snapshot of customer financials the evaluator reads.
// Nil fields mean the data is not on file.
type Applicant struct {
	AnnualIncome *decimal.Decimal
	CreditScore  *int
}

// Eligibility is the outcome of evaluating an applicant against a requested
// principal. Qualifies is the conjunction of all checks; Reasons lists every
// failed check.
type Eligibility struct {
	Qualifies bool
	Reasons   []Reason
}

// Err returns the result as an error when the applicant does not qualify.
func (e Eligibility) Err() error {
	if e.Qualifies {
		return nil
	}
	return &EligibilityError{Reasons: e.Reasons}
}

// EvaluateEligibility applies the income and credit rules independently (no
// short-circuit) so every failure is reported:
//
//   - income sufficiency: annualIncome >= principal * 2
//   - credit sufficiency: creditScore >= 500
//
// Missing income or credit score is reported as its own reason. The function
// is pure: it reads only its arguments and is safe for concurrent use.
func EvaluateEligibility(a Applicant, principal decimal.Decimal) Eligibility {
	var reasons []Reason

	switch {
	case a.AnnualIncome == nil:
		reasons = append(reasons, Reason{
			Code:    ReasonMissingIncome,
			Message: "monthly income is not on file",
		})
	case a.AnnualIncome.LessThan(principal.Mul(decimal.NewFromInt(IncomeMultiple))):
		reasons = append(reasons, Reason{
			Code: ReasonInsufficientIncome,
			Message: fmt.Sprintf("annual income %s is below %dx the requested amount %s",
				a.AnnualIncome.StringFixed(2), IncomeMultiple, principal.StringFixed(2)),
		})
	}

	switch {
	case a.CreditScore == nil:
		reasons = append(reasons, Reason{
			Code:    ReasonMissingCreditScore,
			Message: "credit score is not on file",
		})
	case *a.CreditScore < MinCreditScore:
		reasons = append(reasons, Reason{
			Code: ReasonInsufficientCredit,
			Message: fmt.Sprintf("credit score %d is below the minimum %d",
				*a.CreditScore, MinCreditScore),
		})
	}

	return Eligibility{Qualifies: len(reasons) == 0, Reasons: reasons}
}
