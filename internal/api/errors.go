package api

import (
	"errors"
	"net/http"

	"github.com/jobverse/jobverse-api/internal/service/auth"
	"github.com/jobverse/jobverse-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This is
// the single place the error taxonomy meets the wire: Unauthorized for
// token failures, BadRequest for malformed identifiers and duplicate
// emails, NotFound for missing entities, InternalError for everything else.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized

	// Duplicate email surfaces as 400, matching what the clients expect
	// from the original server.
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Unauthorized Access"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrInvalidID):
		return "Invalid identifier"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrJobNotFound):
		return "Job not found"

	case errors.Is(err, store.ErrTestNotFound):
		return "Test not found"

	case errors.Is(err, store.ErrReservationNotFound):
		return "Reservation not found"

	case errors.Is(err, store.ErrBannerNotFound):
		return "Banner not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	default:
		return "An unexpected error occurred"
	}
}
