package customermock

import (
	"context"

	domain "loan-origination-backend/internal/domain/customer"
)

// Repo is a function-backed mock that satisfies customer.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	ListFn            func(ctx context.Context) ([]domain.Customer, error)
	SaveFn            func(ctx context.Context, c *domain.Customer) error
	DeleteFn          func(ctx context.Context, customerID string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Customer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, customerID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, customerID)
	}
	return nil
}
