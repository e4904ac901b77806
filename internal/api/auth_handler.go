package api

import (
	"log/slog"
	"net/http"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/service/auth"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

// IssueToken handles POST /jwt. The endpoint is open: it signs the identity
// the client asserts; the stored role, not the token, is what gates
// administrative actions later.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
