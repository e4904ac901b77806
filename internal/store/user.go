package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Insert saves a new user.
	// Returns ErrEmailExists if a user with the same email already exists
	// (the users collection carries a unique index on email).
	Insert(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email (case-sensitive match).
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users as a materialized slice.
	List(ctx context.Context) ([]domain.User, error)

	// EnsureIndexes creates the unique index on email. Called once at
	// startup; idempotent.
	EnsureIndexes(ctx context.Context) error
}
