package partner

import (
	"context"

	"loan-origination-backend/internal/domain/customer"
)

type Repository interface {
	Create(ctx context.Context, p *Partner) error
	GetByPartnerID(ctx context.Context, partnerID string) (*Partner, error)
	List(ctx context.Context) ([]Partner, error)
	Delete(ctx context.Context, partnerID string) error

	// Sponsorship (many2many) management.
	AddCustomer(ctx context.Context, p *Partner, c *customer.Customer) error
	ListCustomers(ctx context.Context, p *Partner) ([]customer.Customer, error)
	// GetCustomer resolves a customer only if sponsored by p; otherwise
	// ErrCustomerNotSponsored.
	GetCustomer(ctx context.Context, p *Partner, customerID string) (*customer.Customer, error)
	RemoveCustomer(ctx context.Context, p *Partner, c *customer.Customer) error
}
