package auth

import "errors"

// Sentinel errors returned by token validation.
var (
	// ErrInvalidToken is returned when a token is malformed, carries a bad
	// signature, or was signed with the wrong method.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry claim has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before claim is in
	// the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
