package partner

import (
	"errors"
	"time"

	"loan-origination-backend/internal/domain/customer"
)

var (
	ErrNotFound = errors.New("partner not found")
	// ErrDuplicate covers the (company_name,address) constraint.
	ErrDuplicate = errors.New("partner already exists")
	// ErrCustomerNotSponsored means the customer exists but is not linked
	// to the partner in question.
	ErrCustomerNotSponsored = errors.New("customer not found for this partner")
)

// Partner sponsors customers into the loan program.
type Partner struct {
	ID          uint64              `gorm:"primaryKey;column:id" json:"-"`
	PartnerID   string              `gorm:"size:32;uniqueIndex:ux_partners_partner_id" json:"partner_id"`
	CompanyName string              `gorm:"size:100;uniqueIndex:ux_partners_identity,priority:1" json:"company_name"`
	Address     string              `gorm:"size:255;uniqueIndex:ux_partners_identity,priority:2" json:"address"`
	Customers   []customer.Customer `gorm:"many2many:partner_customers;" json:"customers,omitempty"`
	CreatedAt   time.Time           `gorm:"autoCreateTime;index:idx_partners_created" json:"created_at"`
}

func (Partner) TableName() string { return "partners" }
