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

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/mocks"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid user",
			body:       `{"email":"new@example.com","name":"New User"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			body:       `{"name":"No Email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"email":"not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			handler := NewUserHandler(userStore)

			req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Create(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewUserHandler(userStore)

	body := `{"email":"dup@example.com"}`

	first := httptest.NewRecorder()
	handler.Create(first, httptest.NewRequest("POST", "/users", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	handler.Create(second, httptest.NewRequest("POST", "/users", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusBadRequest, second.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&resp))
	assert.Equal(t, "Email already exists", resp.Message)

	// The failed second attempt must not leave a second record behind.
	assert.Len(t, userStore.Users, 1)
}

func TestAdminStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pathEmail   string
		callerEmail string
		storedRole  string
		storedUser  bool
		wantStatus  int
		wantAdmin   bool
	}{
		{
			name:        "admin asking about self",
			pathEmail:   "admin@example.com",
			callerEmail: "admin@example.com",
			storedUser:  true,
			storedRole:  domain.RoleAdmin,
			wantStatus:  http.StatusOK,
			wantAdmin:   true,
		},
		{
			name:        "regular user asking about self",
			pathEmail:   "user@example.com",
			callerEmail: "user@example.com",
			storedUser:  true,
			storedRole:  domain.RoleUser,
			wantStatus:  http.StatusOK,
			wantAdmin:   false,
		},
		{
			name:        "asking about someone else",
			pathEmail:   "admin@example.com",
			callerEmail: "snoop@example.com",
			storedUser:  true,
			storedRole:  domain.RoleAdmin,
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "unknown user asking about self",
			pathEmail:   "ghost@example.com",
			callerEmail: "ghost@example.com",
			storedUser:  false,
			wantStatus:  http.StatusOK,
			wantAdmin:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			if tt.storedUser {
				userStore.Users[tt.pathEmail] = &domain.User{
					Email: tt.pathEmail,
					Role:  tt.storedRole,
				}
			}
			handler := NewUserHandler(userStore)

			router := chi.NewRouter()
			router.Get("/users/admin/{email}", handler.AdminStatus)

			req := httptest.NewRequest("GET", "/users/admin/"+tt.pathEmail, nil)
			req = req.WithContext(shared.WithUserEmail(req.Context(), tt.callerEmail))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				var resp AdminStatusResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tt.wantAdmin, resp.Admin)
			}
		})
	}
}
