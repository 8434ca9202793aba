package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	customerDomain "loan-origination-backend/internal/domain/customer"
	loanDomain "loan-origination-backend/internal/domain/loan"
	partnerDomain "loan-origination-backend/internal/domain/partner"
	"loan-origination-backend/pkg/money"
)

// writeDomainError maps domain failures onto the API contract:
// 400 field-keyed map for validation/eligibility, 404 for unresolved
// references, 409 for duplicate tuples, 500 for numeric defects.
func writeDomainError(c echo.Context, err error) error {
	var ve *loanDomain.ValidationError
	var ee *loanDomain.EligibilityError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: toDetails(ve.Fields),
		})
	case errors.As(err, &ee):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "customer does not qualify",
			Details: reasonDetails(ee.Reasons),
		})
	case errors.Is(err, customerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
	case errors.Is(err, partnerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "partner not found"})
	case errors.Is(err, partnerDomain.ErrCustomerNotSponsored):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found for this partner"})
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, loanDomain.ErrDuplicateLoan),
		errors.Is(err, customerDomain.ErrDuplicate),
		errors.Is(err, partnerDomain.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, money.ErrNumeric):
		// arithmetic faults are defects, surfaced verbatim
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func toDetails(fields []loanDomain.FieldError) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}

// reasonDetails keys eligibility reasons by their code so clients can match
// on them without parsing messages.
func reasonDetails(reasons []loanDomain.Reason) []FieldError {
	out := make([]FieldError, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, FieldError{Field: string(r.Code), Message: r.Message})
	}
	return out
}
