package api

import (
	"net/http"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// JobApplicationHandler handles job application requests, including the
// applicants-counter side effect on the referenced job.
type JobApplicationHandler struct {
	applicationStore store.JobApplicationStore
	jobStore         store.JobStore
}

// NewJobApplicationHandler creates a new JobApplicationHandler with the
// given dependencies.
func NewJobApplicationHandler(
	applicationStore store.JobApplicationStore,
	jobStore store.JobStore,
) *JobApplicationHandler {
	return &JobApplicationHandler{
		applicationStore: applicationStore,
		jobStore:         jobStore,
	}
}

// ListApplied handles GET /applied-jobs (authenticated), filtered by the
// email query parameter.
func (h *JobApplicationHandler) ListApplied(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	applications, err := h.applicationStore.ListByApplicant(r.Context(), email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list applications", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, applications)
}

// Create handles POST /job-applications (authenticated). The applicants
// counter on the referenced job is incremented first, then the application
// is inserted. The two writes are independent: if the insert fails after
// the increment succeeded, the counter stays incremented with no
// application behind it. That matches the original server, which made no
// attempt to compensate.
func (h *JobApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var application domain.JobApplication
	if err := shared.DecodeJSON(r, &application); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := application.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.jobStore.IncrementApplicants(r.Context(), application.JobID.Hex(), 1); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	if err := h.applicationStore.Insert(r.Context(), &application); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create application", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, application)
}
