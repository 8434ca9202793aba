package uowmock

import (
	"context"

	"loan-origination-backend/internal/domain/uow"
)

// UoW passes the configured repos straight through without a real
// transaction; tests assert on the repos themselves.
type UoW struct {
	Repos uow.Repos
	// Err short-circuits WithinTx when set.
	Err error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}
