package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/mocks"
	"github.com/jobverse/jobverse-api/internal/service/auth"
)

// okHandler records the email the middleware placed in the context.
func okHandler(gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email, ok := shared.UserEmail(r.Context()); ok && gotEmail != nil {
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
		jwtService *mocks.MockJWTService
		wantStatus int
		wantEmail  string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{Email: "user@example.com"},
			},
			wantStatus: http.StatusOK,
			wantEmail:  "user@example.com",
		},
		{
			name:       "missing header",
			authHeader: "",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Token abc",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer tampered-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected validation error",
			authHeader: "Bearer any-token",
			jwtService: &mocks.MockJWTService{ValidateErr: errors.New("key store down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewAuthMiddleware(tt.jwtService, mocks.NewMockUserStore(), mocks.NewMockJobStore())

			var gotEmail string
			handler := m.Authenticate(okHandler(&gotEmail))

			req := httptest.NewRequest("GET", "/reservations", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantEmail != "" {
				assert.Equal(t, tt.wantEmail, gotEmail)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		email      string
		userStore  func() *mocks.MockUserStore
		wantStatus int
	}{
		{
			name:  "admin user",
			email: "admin@example.com",
			userStore: func() *mocks.MockUserStore {
				s := mocks.NewMockUserStore()
				s.Users["admin@example.com"] = &domain.User{
					Email: "admin@example.com", Role: domain.RoleAdmin,
				}
				return s
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "regular user",
			email: "user@example.com",
			userStore: func() *mocks.MockUserStore {
				s := mocks.NewMockUserStore()
				s.Users["user@example.com"] = &domain.User{
					Email: "user@example.com", Role: domain.RoleUser,
				}
				return s
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown user",
			email:      "ghost@example.com",
			userStore:  mocks.NewMockUserStore,
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "store failure",
			email: "user@example.com",
			userStore: func() *mocks.MockUserStore {
				s := mocks.NewMockUserStore()
				s.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, errors.New("connection reset")
				}
				return s
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "no authenticated email",
			email:      "",
			userStore:  mocks.NewMockUserStore,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewAuthMiddleware(&mocks.MockJWTService{}, tt.userStore(), mocks.NewMockJobStore())
			handler := m.RequireAdmin(okHandler(nil))

			req := httptest.NewRequest("GET", "/users", nil)
			if tt.email != "" {
				req = req.WithContext(shared.WithUserEmail(req.Context(), tt.email))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRequireJobOwner(t *testing.T) {
	t.Parallel()

	ownerEmail := "owner@corp.com"
	jobID := primitive.NewObjectID()

	newStores := func() (*mocks.MockUserStore, *mocks.MockJobStore) {
		userStore := mocks.NewMockUserStore()
		userStore.Users[ownerEmail] = &domain.User{Email: ownerEmail}
		userStore.Users["intruder@corp.com"] = &domain.User{Email: "intruder@corp.com"}
		jobStore := mocks.NewMockJobStore()
		jobStore.Jobs[jobID.Hex()] = &domain.Job{
			ID:             jobID,
			Title:          "Backend Engineer",
			RecruiterEmail: ownerEmail,
		}
		return userStore, jobStore
	}

	tests := []struct {
		name        string
		callerEmail string
		jobID       string
		wantStatus  int
	}{
		{
			name:        "owner passes",
			callerEmail: ownerEmail,
			jobID:       jobID.Hex(),
			wantStatus:  http.StatusOK,
		},
		{
			name:        "non-owner denied",
			callerEmail: "intruder@corp.com",
			jobID:       jobID.Hex(),
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "missing job denied, not revealed",
			callerEmail: ownerEmail,
			jobID:       primitive.NewObjectID().Hex(),
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "caller without user record denied",
			callerEmail: "ghost@corp.com",
			jobID:       jobID.Hex(),
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "malformed job id",
			callerEmail: ownerEmail,
			jobID:       "not-a-hex-id",
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore, jobStore := newStores()
			m := NewAuthMiddleware(&mocks.MockJWTService{}, userStore, jobStore)

			router := chi.NewRouter()
			router.With(m.RequireJobOwner).Patch("/job/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("PATCH", "/job/"+tt.jobID, nil)
			req = req.WithContext(shared.WithUserEmail(req.Context(), tt.callerEmail))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

// A denied mutation must not reach the handler or touch the job.
func TestRequireJobOwnerBlocksMutation(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	userStore.Users["intruder@corp.com"] = &domain.User{Email: "intruder@corp.com"}
	jobStore := mocks.NewMockJobStore()
	jobID := primitive.NewObjectID()
	jobStore.Jobs[jobID.Hex()] = &domain.Job{
		ID:             jobID,
		Title:          "Original Title",
		RecruiterEmail: "owner@corp.com",
	}
	m := NewAuthMiddleware(&mocks.MockJWTService{}, userStore, jobStore)

	handlerCalled := false
	router := chi.NewRouter()
	router.With(m.RequireJobOwner).Delete("/job/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest("DELETE", "/job/"+jobID.Hex(), nil)
	req = req.WithContext(shared.WithUserEmail(req.Context(), "intruder@corp.com"))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, handlerCalled)
	assert.Equal(t, "Original Title", jobStore.Jobs[jobID.Hex()].Title)
}
