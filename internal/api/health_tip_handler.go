package api

import (
	"net/http"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/store"
)

// HealthTipHandler serves the read-only health tips collection.
type HealthTipHandler struct {
	healthTipStore store.HealthTipStore
}

// NewHealthTipHandler creates a new HealthTipHandler with the given store.
func NewHealthTipHandler(healthTipStore store.HealthTipStore) *HealthTipHandler {
	return &HealthTipHandler{healthTipStore: healthTipStore}
}

// List handles GET /health-tips.
func (h *HealthTipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.healthTipStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list health tips", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tips)
}
