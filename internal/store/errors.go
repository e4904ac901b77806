package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidID is returned when an identifier string is not a valid
	// hex-encoded ObjectID. Malformed identifiers from the transport
	// boundary must surface as this error, never as a panic.
	ErrInvalidID = errors.New("invalid identifier")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrJobNotFound indicates that the requested job does not exist in the store.
	ErrJobNotFound = fmt.Errorf("%w: job", ErrNotFound)

	// ErrTestNotFound indicates that the requested diagnostic test does not exist in the store.
	ErrTestNotFound = fmt.Errorf("%w: diagnostic test", ErrNotFound)

	// ErrReservationNotFound indicates that the requested reservation does not exist in the store.
	ErrReservationNotFound = fmt.Errorf("%w: reservation", ErrNotFound)

	// ErrBannerNotFound indicates that the requested banner does not exist in the store.
	ErrBannerNotFound = fmt.Errorf("%w: banner", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
