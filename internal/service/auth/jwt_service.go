package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
// Tokens carry the user's email as the identity claim; nothing is stored
// server-side.
type JWTService interface {
	// GenerateToken creates a signed token asserting the given email.
	// The claims' shape is not validated beyond being a non-empty string;
	// identity is whatever the client asserts, exactly as the original
	// token endpoint behaved.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken verifies the token signature and time claims and
	// returns the decoded claims. Returns ErrExpiredToken for expired
	// tokens and ErrInvalidToken for anything malformed or tampered with.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a verified token.
type Claims struct {
	// Email is the identity the token asserts.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
