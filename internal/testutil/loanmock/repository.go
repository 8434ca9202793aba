package loanmock

import (
	"context"

	domain "loan-origination-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository.
// Only wire the functions a test needs; unwired getters return ErrNotFound.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn      func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn             func(ctx context.Context) ([]domain.Loan, error)
	ListByCustomerIDFn func(ctx context.Context, customerID string) ([]domain.Loan, error)
	DeleteFn           func(ctx context.Context, loanID string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}
