package partner

import (
	"context"
	"strings"
	"time"

	"loan-origination-backend/internal/domain/partner"
	"loan-origination-backend/internal/domain/uow"
	customeruc "loan-origination-backend/internal/usecase/customer"
	"loan-origination-backend/pkg/id"
)

type Usecase struct {
	partners partner.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(partners partner.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{partners: partners, uow: tx}
}

type CreatePartnerInput struct {
	CompanyName string `json:"company_name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
}

type PartnerDTO struct {
	PartnerID   string                   `json:"partner_id"`
	CompanyName string                   `json:"company_name"`
	Address     string                   `json:"address"`
	Customers   []customeruc.CustomerDTO `json:"customers"`
	CreatedAt   time.Time                `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreatePartnerInput) (*PartnerDTO, error) {
	p := &partner.Partner{
		PartnerID:   id.NewID32(),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Address:     strings.TrimSpace(in.Address),
	}
	if err := u.partners.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, partnerID string) (*PartnerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]PartnerDTO, error) {
	ps, err := u.partners.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartnerDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, partnerID string) error {
	return u.partners.Delete(ctx, partnerID)
}

// SponsorCustomer creates a new customer and links it to the partner in a
// single transaction.
func (u *Usecase) SponsorCustomer(ctx context.Context, partnerID string, in customeruc.CreateCustomerInput) (*customeruc.CustomerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	var dto *customeruc.CustomerDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cuc := customeruc.NewUsecase(r.Customers)
		created, err := cuc.Create(ctx, in)
		if err != nil {
			return err
		}
		c, err := r.Customers.GetByCustomerID(ctx, created.CustomerID)
		if err != nil {
			return err
		}
		if err := r.Partners.AddCustomer(ctx, p, c); err != nil {
			return err
		}
		dto = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SponsorExistingCustomer links an already-registered customer to the
// partner.
func (u *Usecase) SponsorExistingCustomer(ctx context.Context, partnerID, customerID string) (*customeruc.CustomerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	var dto *customeruc.CustomerDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}
		if err := r.Partners.AddCustomer(ctx, p, c); err != nil {
			return err
		}
		dto = customeruc.ToDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListCustomers(ctx context.Context, partnerID string) ([]customeruc.CustomerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	cs, err := u.partners.ListCustomers(ctx, p)
	if err != nil {
		return nil, err
	}
	out := make([]customeruc.CustomerDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *customeruc.ToDTO(&cs[i]))
	}
	return out, nil
}

// GetCustomer resolves a sponsored customer;
// partner.ErrCustomerNotSponsored when the link does not exist.
func (u *Usecase) GetCustomer(ctx context.Context, partnerID, customerID string) (*customeruc.CustomerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	c, err := u.partners.GetCustomer(ctx, p, customerID)
	if err != nil {
		return nil, err
	}
	return customeruc.ToDTO(c), nil
}

// UpdateCustomer updates a sponsored customer's profile.
func (u *Usecase) UpdateCustomer(ctx context.Context, partnerID, customerID string, in customeruc.CreateCustomerInput) (*customeruc.CustomerDTO, error) {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if _, err := u.partners.GetCustomer(ctx, p, customerID); err != nil {
		return nil, err
	}

	var dto *customeruc.CustomerDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cuc := customeruc.NewUsecase(r.Customers)
		updated, err := cuc.Update(ctx, customerID, in)
		if err != nil {
			return err
		}
		dto = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RemoveCustomer unlinks the sponsorship and deletes the customer record,
// both in one transaction.
func (u *Usecase) RemoveCustomer(ctx context.Context, partnerID, customerID string) error {
	p, err := u.partners.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return err
	}
	c, err := u.partners.GetCustomer(ctx, p, customerID)
	if err != nil {
		return err
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Partners.RemoveCustomer(ctx, p, c); err != nil {
			return err
		}
		return r.Customers.Delete(ctx, c.CustomerID)
	})
}

func toDTO(p *partner.Partner) *PartnerDTO {
	customers := make([]customeruc.CustomerDTO, 0, len(p.Customers))
	for i := range p.Customers {
		customers = append(customers, *customeruc.ToDTO(&p.Customers[i]))
	}
	return &PartnerDTO{
		PartnerID:   p.PartnerID,
		CompanyName: p.CompanyName,
		Address:     p.Address,
		Customers:   customers,
		CreatedAt:   p.CreatedAt,
	}
}
