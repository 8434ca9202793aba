package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, customerID string) error
}
