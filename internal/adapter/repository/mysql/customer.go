package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerDomain "loan-origination-backend/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return customerDomain.ErrDuplicate
	}
	return err
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	err := r.db.WithContext(ctx).Save(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return customerDomain.ErrDuplicate
	}
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&customerDomain.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return customerDomain.ErrNotFound
	}
	return nil
}
