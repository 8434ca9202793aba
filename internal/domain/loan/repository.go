package loan

import "context"

type Repository interface {
	// Create persists a new loan. A (customer, principal, rate, term)
	// tuple conflict is returned as ErrDuplicateLoan.
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	Delete(ctx context.Context, loanID string) error
}
