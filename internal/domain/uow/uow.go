package uow

import (
	"context"

	"loan-origination-backend/internal/domain/customer"
	"loan-origination-backend/internal/domain/partner"
)

type Repos struct {
	Customers customer.Repository
	Partners  partner.Repository
}

// UnitOfWork runs multi-repository flows in one transaction. Sponsoring a
// new customer (create + link to partner) must be atomic: a failed link must
// not leave an orphaned customer row.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
