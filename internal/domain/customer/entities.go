package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("customer not found")
	// ErrDuplicate covers both the unique email and the
	// (first_name,last_name,address) identity constraint.
	ErrDuplicate = errors.New("customer already exists")
)

// Customer is sponsored by one or more partners and may hold loan offers.
// MonthlyIncome and CreditScore are pointers: an absent value is a distinct
// insufficient-data condition for eligibility, never an implicit zero.
type Customer struct {
	ID            uint64           `gorm:"primaryKey;column:id" json:"-"`
	CustomerID    string           `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	FirstName     string           `gorm:"size:60;uniqueIndex:ux_customers_identity,priority:1" json:"first_name"`
	LastName      string           `gorm:"size:60;uniqueIndex:ux_customers_identity,priority:2" json:"last_name"`
	Email         string           `gorm:"size:254;uniqueIndex:ux_customers_email" json:"email"`
	MonthlyIncome *decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthly_income"`
	CreditScore   *int             `json:"credit_score"`
	PhoneNumber   string           `gorm:"size:20" json:"phone_number,omitempty"`
	Address       string           `gorm:"size:255;uniqueIndex:ux_customers_identity,priority:3" json:"address,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime;index:idx_customers_created" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }

// AnnualIncome is monthly income x 12, or nil when income is not on file.
func (c *Customer) AnnualIncome() *decimal.Decimal {
	if c.MonthlyIncome == nil {
		return nil
	}
	v := c.MonthlyIncome.Mul(decimal.NewFromInt(12))
	return &v
}

// MaxLoanAmount is half the annual income, or nil when income is not on file.
func (c *Customer) MaxLoanAmount() *decimal.Decimal {
	ann := c.AnnualIncome()
	if ann == nil {
		return nil
	}
	v := ann.Div(decimal.NewFromInt(2))
	return &v
}
