package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// BannerHandler handles promotional banner requests. The whole banner
// surface, reads included, is admin-only (enforced by middleware on the
// route).
type BannerHandler struct {
	bannerStore store.BannerStore
}

// NewBannerHandler creates a new BannerHandler with the given store.
func NewBannerHandler(bannerStore store.BannerStore) *BannerHandler {
	return &BannerHandler{bannerStore: bannerStore}
}

// List handles GET /banners (admin). The admin dashboard picks the active
// banner out of the full list itself, so no isActive filter is applied
// here.
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list banners", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, banners)
}

// Create handles POST /banners (admin).
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var banner domain.Banner
	if err := shared.DecodeJSON(r, &banner); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := banner.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bannerStore.Insert(r.Context(), &banner); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create banner", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, banner)
}

// SetActive handles PATCH /banner/{id} (admin). The target banner is
// activated first, then every other banner is deactivated in a second
// write. A request landing between the two writes can observe more than
// one active banner.
func (h *BannerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	modified, err := h.bannerStore.SetActive(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid banner id")
		case errors.Is(err, store.ErrBannerNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Banner not found")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to activate banner", err)
		}
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResult{ModifiedCount: modified})
}

// Delete handles DELETE /banner/{id} (admin).
func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.bannerStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResult{DeletedCount: deleted})
}
