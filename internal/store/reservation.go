package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// ReservationStore defines the interface for reservation persistence.
type ReservationStore interface {
	// Insert saves a new reservation and fills in its generated ID.
	Insert(ctx context.Context, reservation *domain.Reservation) error

	// GetByID retrieves a reservation by its hex identifier.
	// Returns ErrInvalidID for malformed hex, ErrReservationNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)

	// List returns all reservations.
	List(ctx context.Context) ([]domain.Reservation, error)

	// ListByUser returns the reservations made by the given user email.
	ListByUser(ctx context.Context, email string) ([]domain.Reservation, error)

	// Delete removes the reservation with the given id and returns the
	// number of documents deleted.
	Delete(ctx context.Context, id string) (int64, error)
}
