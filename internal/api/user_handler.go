package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// UserHandler handles user registration and lookup requests.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{userStore: userStore}
}

// Create handles POST /users. Email uniqueness is check-then-insert for the
// friendly 400, with the store's unique index closing the race window
// behind it.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := shared.DecodeJSON(r, &user); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := user.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.userStore.GetByEmail(r.Context(), user.Email)
	switch {
	case err == nil:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email already exists")
		return
	case !errors.Is(err, store.ErrUserNotFound):
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}

	if err := h.userStore.Insert(r.Context(), &user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// List handles GET /users (admin only).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list users", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// AdminStatus handles GET /users/admin/{email}. Callers may only ask about
// themselves; asking about anyone else is a 403 regardless of whether that
// user exists.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	callerEmail, ok := shared.UserEmail(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized Access")
		return
	}
	if callerEmail != email {
		shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, AdminStatusResponse{Admin: false})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to look up user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdminStatusResponse{Admin: user.IsAdmin()})
}
