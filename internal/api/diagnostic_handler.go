package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// DiagnosticTestHandler handles the diagnostic-test offering CRUD requests.
type DiagnosticTestHandler struct {
	testStore store.DiagnosticTestStore
}

// NewDiagnosticTestHandler creates a new DiagnosticTestHandler with the
// given dependencies.
func NewDiagnosticTestHandler(testStore store.DiagnosticTestStore) *DiagnosticTestHandler {
	return &DiagnosticTestHandler{testStore: testStore}
}

// List handles GET /tests (public).
func (h *DiagnosticTestHandler) List(w http.ResponseWriter, r *http.Request) {
	tests, err := h.testStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list tests", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tests)
}

// Get handles GET /test/{id} (public).
func (h *DiagnosticTestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	test, err := h.testStore.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid test id")
		case errors.Is(err, store.ErrTestNotFound):
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to get test", err)
		}
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, test)
}

// Create handles POST /tests (admin only, enforced by middleware).
func (h *DiagnosticTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var test domain.DiagnosticTest
	if err := shared.DecodeJSON(r, &test); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if test.Name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Test name is required")
		return
	}

	if err := h.testStore.Insert(r.Context(), &test); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create test", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, test)
}

// Delete handles DELETE /test/{id} (admin only, enforced by middleware).
func (h *DiagnosticTestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.testStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResult{DeletedCount: deleted})
}
