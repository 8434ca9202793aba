package customer

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-origination-backend/internal/domain/customer"
	"loan-origination-backend/pkg/id"
)

type Usecase struct{ repo customer.Repository }

func NewUsecase(r customer.Repository) *Usecase { return &Usecase{repo: r} }

type CreateCustomerInput struct {
	FirstName     string           `json:"first_name" validate:"required,max=60"`
	LastName      string           `json:"last_name" validate:"required,max=60"`
	Email         string           `json:"email" validate:"required,email"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	CreditScore   *int             `json:"credit_score" validate:"omitempty,creditscore"`
	PhoneNumber   string           `json:"phone_number" validate:"max=20"`
	Address       string           `json:"address" validate:"max=255"`
}

// CustomerDTO exposes the derived income figures alongside the stored
// attributes; annual_income and max_loan_amount are null when income is
// not on file.
type CustomerDTO struct {
	CustomerID    string           `json:"customer_id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	FullName      string           `json:"full_name"`
	Email         string           `json:"email"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	AnnualIncome  *decimal.Decimal `json:"annual_income"`
	MaxLoanAmount *decimal.Decimal `json:"max_loan_amount"`
	CreditScore   *int             `json:"credit_score"`
	PhoneNumber   string           `json:"phone_number,omitempty"`
	Address       string           `json:"address,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreateCustomerInput) (*CustomerDTO, error) {
	c := newEntity(in)
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return ToDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, customerID string) (*CustomerDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ToDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]CustomerDTO, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *ToDTO(&cs[i]))
	}
	return out, nil
}

// Update replaces the mutable profile fields; the public id and timestamps
// are untouched.
func (u *Usecase) Update(ctx context.Context, customerID string, in CreateCustomerInput) (*CustomerDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	applyInput(c, in)
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return ToDTO(c), nil
}

func (u *Usecase) Delete(ctx context.Context, customerID string) error {
	return u.repo.Delete(ctx, customerID)
}

func newEntity(in CreateCustomerInput) *customer.Customer {
	c := &customer.Customer{CustomerID: id.NewID32()}
	applyInput(c, in)
	return c
}

func applyInput(c *customer.Customer, in CreateCustomerInput) {
	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	// emails are stored lowercase for the uniqueness check
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.MonthlyIncome = in.MonthlyIncome
	c.CreditScore = in.CreditScore
	c.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	c.Address = strings.TrimSpace(in.Address)
}

// ToDTO is shared with the partner usecase, which returns sponsored
// customers in the same shape.
func ToDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID:    c.CustomerID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		FullName:      c.FullName(),
		Email:         c.Email,
		MonthlyIncome: c.MonthlyIncome,
		AnnualIncome:  c.AnnualIncome(),
		MaxLoanAmount: c.MaxLoanAmount(),
		CreditScore:   c.CreditScore,
		PhoneNumber:   c.PhoneNumber,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
