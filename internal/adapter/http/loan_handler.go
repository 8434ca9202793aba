package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	ucloan "loan-origination-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *ucloan.Usecase }

func NewLoanHandler(uc *ucloan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// loanFields is the raw wire shape of a loan payload, including the accepted
// aliases. Pointers distinguish "absent" from an explicit zero so rate/term
// defaults apply only to fields that were never sent.
type loanFields struct {
	Customer     string           `json:"customer"`
	CustomerID   string           `json:"customer_id"`
	LoanAmount   *decimal.Decimal `json:"loan_amount"`
	AnnualRate   *decimal.Decimal `json:"annual_rate"`
	InterestRate *decimal.Decimal `json:"interest_rate"`
	TermMonths   *int             `json:"term_months"`
}

// createLoanReq also accepts the whole payload nested under "loanData".
type createLoanReq struct {
	loanFields
	LoanData *loanFields `json:"loanData"`
}

// normalize resolves the wrapper and aliases once, producing the canonical
// request shape. Canonical fields win over their aliases when both are sent.
func (r createLoanReq) normalize() ucloan.CreateLoanInput {
	f := r.loanFields
	if r.LoanData != nil {
		f = *r.LoanData
	}
	cust := f.Customer
	if cust == "" {
		cust = f.CustomerID
	}
	rate := f.AnnualRate
	if rate == nil {
		rate = f.InterestRate
	}
	in := ucloan.CreateLoanInput{
		CustomerID: cust,
		AnnualRate: rate,
		TermMonths: f.TermMonths,
	}
	if f.LoanAmount != nil {
		in.Principal = *f.LoanAmount
	}
	return in
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.normalize())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Quote returns a hypothetical payment for proposed terms; nothing is
// persisted and eligibility is not consulted.
func (h *LoanHandler) Quote(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Quote(c.Request().Context(), req.normalize())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListCustomerLoans serves GET /customers/:customer_id/loanoffers.
func (h *LoanHandler) ListCustomerLoans(c echo.Context) error {
	dtos, err := h.uc.ListByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// CreateCustomerLoan serves POST /customers/:customer_id/loanoffers; the
// path customer overrides any customer reference in the body.
func (h *LoanHandler) CreateCustomerLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	in := req.normalize()
	in.CustomerID = c.Param("customer_id")
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
