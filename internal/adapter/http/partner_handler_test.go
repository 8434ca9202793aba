package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	customerDomain "loan-origination-backend/internal/domain/customer"
	partnerDomain "loan-origination-backend/internal/domain/partner"
	"loan-origination-backend/internal/domain/uow"
	"loan-origination-backend/internal/testutil/customermock"
	"loan-origination-backend/internal/testutil/partnermock"
	"loan-origination-backend/internal/testutil/uowmock"
	ucpartner "loan-origination-backend/internal/usecase/partner"
)

func newPartnerHandler(partners *partnermock.Repo, customers *customermock.Repo) *PartnerHandler {
	tx := &uowmock.UoW{Repos: uow.Repos{Customers: customers, Partners: partners}}
	return NewPartnerHandler(ucpartner.NewUsecase(partners, tx))
}

func TestCreatePartner_Success(t *testing.T) {
	e := newEchoWithValidator()
	var saved *partnerDomain.Partner
	partners := &partnermock.Repo{
		CreateFn: func(ctx context.Context, p *partnerDomain.Partner) error {
			saved = p
			return nil
		},
	}
	h := newPartnerHandler(partners, &customermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/partners", mustJSON(map[string]any{
		"company_name": "  Acme Lending  ",
		"address":      "1 Main St",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePartner(c); err != nil {
		t.Fatalf("CreatePartner error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}
	if saved == nil || saved.CompanyName != "Acme Lending" {
		t.Fatalf("saved = %+v, want trimmed company name", saved)
	}
	var got ucpartner.PartnerDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.PartnerID == "" {
		t.Fatal("partner_id not assigned")
	}
}

func TestCreatePartner_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := newPartnerHandler(&partnermock.Repo{}, &customermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/partners", mustJSON(map[string]any{
		"address": "1 Main St",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePartner(c); err != nil {
		t.Fatalf("CreatePartner error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "CompanyName", "required") {
		t.Fatalf("details = %+v, want CompanyName required", er.Details)
	}
}

func TestGetPartner_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newPartnerHandler(&partnermock.Repo{}, &customermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/partners/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id")
	c.SetParamValues("nope")

	if err := h.GetPartner(c); err != nil {
		t.Fatalf("GetPartner error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body)
	}
}

func TestSponsorCustomer_Success(t *testing.T) {
	e := newEchoWithValidator()

	p := &partnerDomain.Partner{ID: 1, PartnerID: "p-1", CompanyName: "Acme"}
	var linked *customerDomain.Customer
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
			if partnerID != "p-1" {
				return nil, partnerDomain.ErrNotFound
			}
			return p, nil
		},
		AddCustomerFn: func(ctx context.Context, gp *partnerDomain.Partner, c *customerDomain.Customer) error {
			linked = c
			return nil
		},
	}
	var created *customerDomain.Customer
	customers := &customermock.Repo{
		CreateFn: func(ctx context.Context, c *customerDomain.Customer) error {
			created = c
			return nil
		},
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			if created == nil || created.CustomerID != customerID {
				return nil, customerDomain.ErrNotFound
			}
			return created, nil
		},
	}
	h := newPartnerHandler(partners, customers)

	req := httptest.NewRequest(stdhttp.MethodPost, "/partners/p-1/customers", mustJSON(map[string]any{
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"email":          "Ada@Example.com",
		"monthly_income": "5000",
		"credit_score":   700,
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id")
	c.SetParamValues("p-1")

	if err := h.SponsorCustomer(c); err != nil {
		t.Fatalf("SponsorCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}
	if linked == nil || created == nil || linked.CustomerID != created.CustomerID {
		t.Fatalf("sponsorship not linked: created=%+v linked=%+v", created, linked)
	}
}

func TestSponsorCustomer_ExistingByID(t *testing.T) {
	e := newEchoWithValidator()

	p := &partnerDomain.Partner{ID: 1, PartnerID: "p-1"}
	existing := &customerDomain.Customer{ID: 2, CustomerID: "cccccccccccccccccccccccccccccccc", FirstName: "Ada", LastName: "Lovelace"}
	var linked *customerDomain.Customer
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
			return p, nil
		},
		AddCustomerFn: func(ctx context.Context, gp *partnerDomain.Partner, c *customerDomain.Customer) error {
			linked = c
			return nil
		},
	}
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			if customerID == existing.CustomerID {
				return existing, nil
			}
			return nil, customerDomain.ErrNotFound
		},
	}
	h := newPartnerHandler(partners, customers)

	// body carries only the reference, none of the profile fields
	req := httptest.NewRequest(stdhttp.MethodPost, "/partners/p-1/customers", mustJSON(map[string]any{
		"customer_id": existing.CustomerID,
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id")
	c.SetParamValues("p-1")

	if err := h.SponsorCustomer(c); err != nil {
		t.Fatalf("SponsorCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}
	if linked == nil || linked.CustomerID != existing.CustomerID {
		t.Fatalf("linked = %+v, want existing customer", linked)
	}
}

func TestSponsorCustomer_PartnerNotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newPartnerHandler(&partnermock.Repo{}, &customermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/partners/nope/customers", mustJSON(map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id")
	c.SetParamValues("nope")

	if err := h.SponsorCustomer(c); err != nil {
		t.Fatalf("SponsorCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body)
	}
}

func TestGetPartnerCustomer_NotSponsored(t *testing.T) {
	e := newEchoWithValidator()
	p := &partnerDomain.Partner{ID: 1, PartnerID: "p-1"}
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
			return p, nil
		},
	}
	h := newPartnerHandler(partners, &customermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/partners/p-1/customers/c-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id", "customer_id")
	c.SetParamValues("p-1", "c-1")

	if err := h.GetPartnerCustomer(c); err != nil {
		t.Fatalf("GetPartnerCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body)
	}
}

func TestDeletePartnerCustomer_NoContent(t *testing.T) {
	e := newEchoWithValidator()
	p := &partnerDomain.Partner{ID: 1, PartnerID: "p-1"}
	cust := &customerDomain.Customer{ID: 2, CustomerID: "c-1"}
	unlinked := false
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
			return p, nil
		},
		GetCustomerFn: func(ctx context.Context, gp *partnerDomain.Partner, customerID string) (*customerDomain.Customer, error) {
			return cust, nil
		},
		RemoveCustomerFn: func(ctx context.Context, gp *partnerDomain.Partner, c *customerDomain.Customer) error {
			unlinked = true
			return nil
		},
	}
	deleted := false
	customers := &customermock.Repo{
		DeleteFn: func(ctx context.Context, customerID string) error {
			deleted = customerID == "c-1"
			return nil
		},
	}
	h := newPartnerHandler(partners, customers)

	req := httptest.NewRequest(stdhttp.MethodDelete, "/partners/p-1/customers/c-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id", "customer_id")
	c.SetParamValues("p-1", "c-1")

	if err := h.DeletePartnerCustomer(c); err != nil {
		t.Fatalf("DeletePartnerCustomer error: %v", err)
	}
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204, body %s", rec.Code, rec.Body)
	}
	if !unlinked || !deleted {
		t.Fatalf("unlinked=%v deleted=%v, want both", unlinked, deleted)
	}
}
