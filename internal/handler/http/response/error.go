package response

import (
	"errors"
	"net/http"

	"github.com/rrservice/service-dashboard-go/internal/domain/auth"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
	"github.com/rrservice/service-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Source fetch failures surface as a visible error state; the
	// derivation layer itself never errors on data.
	case errors.Is(err, ticket.ErrSourceUnavailable):
		BadGateway(w, "Ticket source unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
