package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerDomain "loan-origination-backend/internal/domain/customer"
	partnerDomain "loan-origination-backend/internal/domain/partner"
)

type PartnerRepository struct{ db *gorm.DB }

func NewPartnerRepository(db *gorm.DB) *PartnerRepository { return &PartnerRepository{db: db} }

func (r *PartnerRepository) Create(ctx context.Context, p *partnerDomain.Partner) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return partnerDomain.ErrDuplicate
	}
	return err
}

func (r *PartnerRepository) GetByPartnerID(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
	var out partnerDomain.Partner
	err := r.db.WithContext(ctx).
		Preload("Customers").
		Where("partner_id = ?", partnerID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, partnerDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PartnerRepository) List(ctx context.Context) ([]partnerDomain.Partner, error) {
	var out []partnerDomain.Partner
	err := r.db.WithContext(ctx).
		Preload("Customers").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PartnerRepository) Delete(ctx context.Context, partnerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p partnerDomain.Partner
		err := tx.Where("partner_id = ?", partnerID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return partnerDomain.ErrNotFound
		}
		if err != nil {
			return err
		}
		// drop sponsorship rows first, then the partner itself
		if err := tx.Model(&p).Association("Customers").Clear(); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

func (r *PartnerRepository) AddCustomer(ctx context.Context, p *partnerDomain.Partner, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Model(p).Association("Customers").Append(c)
}

func (r *PartnerRepository) ListCustomers(ctx context.Context, p *partnerDomain.Partner) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	err := r.db.WithContext(ctx).Model(p).Association("Customers").Find(&out)
	return out, err
}

func (r *PartnerRepository) GetCustomer(ctx context.Context, p *partnerDomain.Partner, customerID string) (*customerDomain.Customer, error) {
	var out []customerDomain.Customer
	err := r.db.WithContext(ctx).Model(p).
		Where("customer_id = ?", customerID).
		Association("Customers").Find(&out)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, partnerDomain.ErrCustomerNotSponsored
	}
	return &out[0], nil
}

func (r *PartnerRepository) RemoveCustomer(ctx context.Context, p *partnerDomain.Partner, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Model(p).Association("Customers").Delete(c)
}
