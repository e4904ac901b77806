package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// ReservationHandler handles reservation requests, including the slot and
// reservation counter side effects on the referenced diagnostic test.
type ReservationHandler struct {
	reservationStore store.ReservationStore
	testStore        store.DiagnosticTestStore
}

// NewReservationHandler creates a new ReservationHandler with the given
// dependencies.
func NewReservationHandler(
	reservationStore store.ReservationStore,
	testStore store.DiagnosticTestStore,
) *ReservationHandler {
	return &ReservationHandler{
		reservationStore: reservationStore,
		testStore:        testStore,
	}
}

// List handles GET /reservations (authenticated). An email query parameter
// narrows the result to one user's reservations; without it the full list
// is returned for the admin dashboard.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	var (
		reservations []domain.Reservation
		err          error
	)
	if email != "" {
		reservations, err = h.reservationStore.ListByUser(r.Context(), email)
	} else {
		reservations, err = h.reservationStore.List(r.Context())
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list reservations", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reservations)
}

// Create handles POST /reservations (authenticated). The reservation is
// inserted first, then the test's slots and reservations counters move in
// one atomic update. The insert and the counter update are still two
// independent writes with no rollback: a failed counter update leaves the
// reservation standing, and nothing stops slots from going negative.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := shared.DecodeJSON(r, &reservation); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := reservation.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reservationStore.Insert(r.Context(), &reservation); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create reservation", err)
		return
	}

	if err := h.testStore.AdjustCounters(r.Context(), reservation.TestID.Hex(), -1, 1); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reservation)
}

// Delete handles DELETE /reservation/{id} (authenticated). The reservation
// is read first to recover its test reference, then deleted, then the
// test's counters are reversed, the inverse of Create.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reservation, err := h.reservationStore.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reservation id")
		case errors.Is(err, store.ErrReservationNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Reservation not found")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to delete reservation", err)
		}
		return
	}

	deleted, err := h.reservationStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	if err := h.testStore.AdjustCounters(r.Context(), reservation.TestID.Hex(), 1, -1); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResult{DeletedCount: deleted})
}
