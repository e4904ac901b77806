package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/service/auth"
	"github.com/jobverse/jobverse-api/internal/store"
)

// AuthMiddleware provides the request authorization gates: bearer-token
// authentication, admin-role checks, and job-ownership checks. Gates
// compose in that order; a failed gate short-circuits before the handler
// runs, so no handler side effect precedes authorization.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	jobStore   store.JobStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	jwtService auth.JWTService,
	userStore store.UserStore,
	jobStore store.JobStore,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
		jobStore:   jobStore,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the caller's email to the request context for downstream gates and
// handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithUserEmail(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows the request through only when the authenticated
// caller's stored user record carries the admin role. Must be chained
// after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.UserEmail(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to verify admin role", err)
			return
		}

		if !user.IsAdmin() {
			shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireJobOwner allows job mutations through only when the authenticated
// caller is the recruiter who owns the job named by the {id} path
// parameter. A missing user, a missing job, and a mismatched owner all
// yield the same 403 so that the response does not reveal whether the job
// exists. Must be chained after Authenticate.
func (m *AuthMiddleware) RequireJobOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.UserEmail(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to verify job ownership", err)
			return
		}

		jobID := chi.URLParam(r, "id")
		job, err := m.jobStore.GetByID(r.Context(), jobID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidID):
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid job id")
			case errors.Is(err, store.ErrJobNotFound):
				// Absence folds into denial; see the doc comment.
				shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Failed to verify job ownership", err)
			}
			return
		}

		if user.Email != job.RecruiterEmail {
			shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
			return
		}

		next.ServeHTTP(w, r)
	})
}
