package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/mocks"
)

func newBannerRouter(handler *BannerHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/banners", handler.List)
	router.Post("/banners", handler.Create)
	router.Patch("/banner/{id}", handler.SetActive)
	router.Delete("/banner/{id}", handler.Delete)
	return router
}

func TestCreateBanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid banner",
			body:       `{"title":"Summer Sale","content":"20% off all tests"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"content":"20% off all tests"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newBannerRouter(NewBannerHandler(mocks.NewMockBannerStore()))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder,
				httptest.NewRequest("POST", "/banners", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestSetActiveBannerExclusivity(t *testing.T) {
	t.Parallel()

	bannerStore := mocks.NewMockBannerStore()
	first := &domain.Banner{ID: primitive.NewObjectID(), Title: "First", IsActive: true}
	second := &domain.Banner{ID: primitive.NewObjectID(), Title: "Second"}
	bannerStore.Banners[first.ID.Hex()] = first
	bannerStore.Banners[second.ID.Hex()] = second
	router := newBannerRouter(NewBannerHandler(bannerStore))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder,
		httptest.NewRequest("PATCH", "/banner/"+second.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	// Activating one banner deactivates the previously active one.
	assert.True(t, second.IsActive)
	assert.False(t, first.IsActive)

	var resp UpdateResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.ModifiedCount)
}

// The response echoes the store's acknowledgment, so re-activating a banner
// that is already active reports zero modified documents.
func TestSetActiveBannerAlreadyActive(t *testing.T) {
	t.Parallel()

	bannerStore := mocks.NewMockBannerStore()
	banner := &domain.Banner{ID: primitive.NewObjectID(), Title: "Current", IsActive: true}
	bannerStore.Banners[banner.ID.Hex()] = banner
	router := newBannerRouter(NewBannerHandler(bannerStore))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder,
		httptest.NewRequest("PATCH", "/banner/"+banner.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UpdateResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, int64(0), resp.ModifiedCount)
	assert.True(t, banner.IsActive)
}

func TestSetActiveBannerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{
			name:       "unknown banner",
			id:         primitive.NewObjectID().Hex(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			id:         "not-a-hex-id",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newBannerRouter(NewBannerHandler(mocks.NewMockBannerStore()))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder,
				httptest.NewRequest("PATCH", "/banner/"+tt.id, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestDeleteBanner(t *testing.T) {
	t.Parallel()

	bannerStore := mocks.NewMockBannerStore()
	banner := &domain.Banner{ID: primitive.NewObjectID(), Title: "Old Promo"}
	bannerStore.Banners[banner.ID.Hex()] = banner
	router := newBannerRouter(NewBannerHandler(bannerStore))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder,
		httptest.NewRequest("DELETE", "/banner/"+banner.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp DeleteResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.DeletedCount)
	assert.Empty(t, bannerStore.Banners)
}
