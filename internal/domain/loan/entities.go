package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a persisted loan offer. Financial terms are immutable after
// creation; there is no update path. The composite unique index enforces
// that no two offers share the identical (customer, principal, rate, term)
// tuple. The monthly payment is derived from the stored terms, never stored.
type Loan struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID string          `gorm:"size:32;uniqueIndex:ux_loans_terms,priority:1;index:idx_loans_customer_created,priority:1" json:"customer_id"`
	Principal  decimal.Decimal `gorm:"type:decimal(10,2);uniqueIndex:ux_loans_terms,priority:2" json:"loan_amount"`
	AnnualRate decimal.Decimal `gorm:"type:decimal(5,2);uniqueIndex:ux_loans_terms,priority:3" json:"annual_rate"`
	TermMonths int             `gorm:"uniqueIndex:ux_loans_terms,priority:4" json:"term_months"`
	IssueDate  time.Time       `gorm:"type:date" json:"issue_date"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index:idx_loans_customer_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
