package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/cards-api/internal/api/shared"
	"github.com/phrazzld/cards-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Only
// client faults map to 4xx; anything unrecognized is a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message that can be shown to clients
// without leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, shared.ErrMalformedBody):
		return "Invalid request format"
	default:
		return "An unexpected error occurred"
	}
}
