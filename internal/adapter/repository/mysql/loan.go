package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loanDomain "loan-origination-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Create inserts the loan; the ux_loans_terms unique index enforces the
// (customer, principal, rate, term) tuple atomically, so concurrent
// duplicates lose the race inside the database.
func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return loanDomain.ErrDuplicateLoan
	}
	return err
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) error {
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Loan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}
