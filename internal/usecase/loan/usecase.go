// Package loan holds the loan-offer lifecycle coordinator: a request moves
// Received -> Validated -> EligibilityChecked -> Created, or short-circuits
// to a rejection at the first failing stage. Shape is checked before
// eligibility so eligibility reasons are never reported for requests whose
// numeric fields are nonsensical.
package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"loan-origination-backend/internal/domain/customer"
	"loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/pkg/id"
)

type Usecase struct {
	loans     loan.Repository
	customers customer.Repository
}

func NewUsecase(loans loan.Repository, customers customer.Repository) *Usecase {
	return &Usecase{loans: loans, customers: customers}
}

// CreateLoanInput is the normalized request. Nil AnnualRate/TermMonths mean
// the field was entirely absent and the documented default applies.
type CreateLoanInput struct {
	CustomerID string
	Principal  decimal.Decimal
	AnnualRate *decimal.Decimal
	TermMonths *int
}

type LoanDTO struct {
	LoanID         string          `json:"loan_id"`
	CustomerID     string          `json:"customer_id"`
	Principal      decimal.Decimal `json:"loan_amount"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	IssueDate      string          `json:"issue_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Create runs the full lifecycle. Terminal short-circuits:
//   - *loan.ValidationError when field checks fail (all failures collected)
//   - customer.ErrNotFound when the reference does not resolve
//   - *loan.EligibilityError when the customer does not qualify (all reasons)
//   - loan.ErrDuplicateLoan when the terms tuple already exists
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	req := loan.NewRequest(in.CustomerID, in.Principal, in.AnnualRate, in.TermMonths)
	if ve := req.Validate(); ve != nil {
		return nil, ve
	}

	c, err := u.customers.GetByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	elig := loan.EvaluateEligibility(loan.Applicant{
		AnnualIncome: c.AnnualIncome(),
		CreditScore:  c.CreditScore,
	}, req.Principal)
	if err := elig.Err(); err != nil {
		return nil, err
	}

	// Compute the payment before persisting; a numeric fault must fail the
	// request, not leave a stored loan that cannot be quoted.
	payment, err := loan.MonthlyPayment(req.Principal, req.AnnualRate, req.TermMonths)
	if err != nil {
		return nil, err
	}

	l := &loan.Loan{
		LoanID:     id.NewID32(),
		CustomerID: c.CustomerID,
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermMonths: req.TermMonths,
		IssueDate:  time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return dto(l, payment), nil
}

// Quote computes a hypothetical payment for proposed terms without touching
// eligibility or storage. Callers opt in to "what if" quotes this way; a
// rejection from Create never includes one.
func (u *Usecase) Quote(ctx context.Context, in CreateLoanInput) (*QuoteDTO, error) {
	req := loan.NewRequest(in.CustomerID, in.Principal, in.AnnualRate, in.TermMonths)
	if ve := req.Validate(); ve != nil {
		return nil, ve
	}
	payment, err := loan.MonthlyPayment(req.Principal, req.AnnualRate, req.TermMonths)
	if err != nil {
		return nil, err
	}
	return &QuoteDTO{
		Principal:      req.Principal,
		AnnualRate:     req.AnnualRate,
		TermMonths:     req.TermMonths,
		MonthlyPayment: payment,
	}, nil
}

type QuoteDTO struct {
	Principal      decimal.Decimal `json:"loan_amount"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return u.toDTO(l)
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls)
}

// ListByCustomer returns customer.ErrNotFound for an unknown reference so
// the HTTP layer can distinguish "no loans" from "no such customer".
func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]LoanDTO, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		return nil, err
	}
	ls, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls)
}

// Delete removes a loan record. Deletion is an administrative action; the
// core never deletes on its own.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	return u.loans.Delete(ctx, loanID)
}

// toDTO recomputes the payment from the persisted terms: the stored tuple is
// the single source of truth and the calculator is deterministic.
func (u *Usecase) toDTO(l *loan.Loan) (*LoanDTO, error) {
	payment, err := loan.MonthlyPayment(l.Principal, l.AnnualRate, l.TermMonths)
	if err != nil {
		return nil, err
	}
	return dto(l, payment), nil
}

func (u *Usecase) toDTOs(ls []loan.Loan) ([]LoanDTO, error) {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		d, err := u.toDTO(&ls[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func dto(l *loan.Loan, payment decimal.Decimal) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		CustomerID:     l.CustomerID,
		Principal:      l.Principal,
		AnnualRate:     l.AnnualRate,
		TermMonths:     l.TermMonths,
		MonthlyPayment: payment,
		IssueDate:      l.IssueDate.Format("2006-01-02"),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
