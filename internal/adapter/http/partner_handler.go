package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uccustomer "loan-origination-backend/internal/usecase/customer"
	ucpartner "loan-origination-backend/internal/usecase/partner"
)

type PartnerHandler struct{ uc *ucpartner.Usecase }

func NewPartnerHandler(uc *ucpartner.Usecase) *PartnerHandler { return &PartnerHandler{uc: uc} }

func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req ucpartner.CreatePartnerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PartnerHandler) GetPartner(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("partner_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PartnerHandler) DeletePartner(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("partner_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// sponsorCustomerReq accepts either a full new-customer profile or a bare
// customer_id referencing an existing one.
type sponsorCustomerReq struct {
	CustomerID string `json:"customer_id"`
	uccustomer.CreateCustomerInput
}

// SponsorCustomer serves POST /partners/:partner_id/customers. With a
// customer_id in the body it links the existing customer; otherwise it
// creates the customer and links the sponsorship in one transaction.
func (h *PartnerHandler) SponsorCustomer(c echo.Context) error {
	var req sponsorCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if req.CustomerID != "" {
		dto, err := h.uc.SponsorExistingCustomer(c.Request().Context(), c.Param("partner_id"), req.CustomerID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusCreated, dto)
	}

	if err := c.Validate(&req.CreateCustomerInput); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SponsorCustomer(c.Request().Context(), c.Param("partner_id"), req.CreateCustomerInput)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PartnerHandler) ListPartnerCustomers(c echo.Context) error {
	dtos, err := h.uc.ListCustomers(c.Request().Context(), c.Param("partner_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PartnerHandler) GetPartnerCustomer(c echo.Context) error {
	dto, err := h.uc.GetCustomer(c.Request().Context(), c.Param("partner_id"), c.Param("customer_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) UpdatePartnerCustomer(c echo.Context) error {
	var req uccustomer.CreateCustomerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateCustomer(c.Request().Context(), c.Param("partner_id"), c.Param("customer_id"), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) DeletePartnerCustomer(c echo.Context) error {
	if err := h.uc.RemoveCustomer(c.Request().Context(), c.Param("partner_id"), c.Param("customer_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
