package partnermock

import (
	"context"

	customerDomain "loan-origination-backend/internal/domain/customer"
	domain "loan-origination-backend/internal/domain/partner"
)

// Repo is a function-backed mock that satisfies partner.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Partner) error
	GetByPartnerIDFn func(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListFn           func(ctx context.Context) ([]domain.Partner, error)
	DeleteFn         func(ctx context.Context, partnerID string) error
	AddCustomerFn    func(ctx context.Context, p *domain.Partner, c *customerDomain.Customer) error
	ListCustomersFn  func(ctx context.Context, p *domain.Partner) ([]customerDomain.Customer, error)
	GetCustomerFn    func(ctx context.Context, p *domain.Partner, customerID string) (*customerDomain.Customer, error)
	RemoveCustomerFn func(ctx context.Context, p *domain.Partner, c *customerDomain.Customer) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Partner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPartnerID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	if m.GetByPartnerIDFn != nil {
		return m.GetByPartnerIDFn(ctx, partnerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Partner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, partnerID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, partnerID)
	}
	return nil
}

func (m *Repo) AddCustomer(ctx context.Context, p *domain.Partner, c *customerDomain.Customer) error {
	if m.AddCustomerFn != nil {
		return m.AddCustomerFn(ctx, p, c)
	}
	return nil
}

func (m *Repo) ListCustomers(ctx context.Context, p *domain.Partner) ([]customerDomain.Customer, error) {
	if m.ListCustomersFn != nil {
		return m.ListCustomersFn(ctx, p)
	}
	return nil, nil
}

func (m *Repo) GetCustomer(ctx context.Context, p *domain.Partner, customerID string) (*customerDomain.Customer, error) {
	if m.GetCustomerFn != nil {
		return m.GetCustomerFn(ctx, p, customerID)
	}
	return nil, domain.ErrCustomerNotSponsored
}

func (m *Repo) RemoveCustomer(ctx context.Context, p *domain.Partner, c *customerDomain.Customer) error {
	if m.RemoveCustomerFn != nil {
		return m.RemoveCustomerFn(ctx, p, c)
	}
	return nil
}
