package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// JobHandler handles job posting CRUD requests.
type JobHandler struct {
	jobStore store.JobStore
}

// NewJobHandler creates a new JobHandler with the given dependencies.
func NewJobHandler(jobStore store.JobStore) *JobHandler {
	return &JobHandler{jobStore: jobStore}
}

// List handles GET /jobs (public).
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list jobs", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, jobs)
}

// Get handles GET /job/{id} (public). A missing job answers null, the shape
// the job-board client already handles.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.jobStore.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid job id")
		case errors.Is(err, store.ErrJobNotFound):
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to get job", err)
		}
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, job)
}

// ListMine handles GET /my-jobs (authenticated), filtered by the email
// query parameter.
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	jobs, err := h.jobStore.ListByRecruiter(r.Context(), email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list jobs", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, jobs)
}

// Create handles POST /jobs (authenticated).
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := shared.DecodeJSON(r, &job); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := job.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.jobStore.Insert(r.Context(), &job); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create job", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, job)
}

// Update handles PATCH /job/{id} (owner only, enforced by middleware).
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch map[string]interface{}
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	// Identity and counter fields are owned by the system, not the patch.
	delete(patch, "_id")
	delete(patch, "applicants")

	modified, err := h.jobStore.Update(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResult{ModifiedCount: modified})
}

// Delete handles DELETE /job/{id} (owner only, enforced by middleware).
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.jobStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResult{DeletedCount: deleted})
}
