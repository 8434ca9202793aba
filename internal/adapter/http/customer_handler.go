package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uccustomer "loan-origination-backend/internal/usecase/customer"
)

type CustomerHandler struct{ uc *uccustomer.Usecase }

func NewCustomerHandler(uc *uccustomer.Usecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
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
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
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
	dto, err := h.uc.Update(c.Request().Context(), c.Param("customer_id"), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("customer_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
