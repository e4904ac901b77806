package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// DiagnosticTestStore defines the interface for diagnostic test persistence.
type DiagnosticTestStore interface {
	// Insert saves a new diagnostic test offering.
	Insert(ctx context.Context, test *domain.DiagnosticTest) error

	// GetByID retrieves a test by its hex identifier.
	// Returns ErrInvalidID for malformed hex, ErrTestNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.DiagnosticTest, error)

	// List returns all test offerings.
	List(ctx context.Context) ([]domain.DiagnosticTest, error)

	// Delete removes the test with the given id and returns the number of
	// documents deleted.
	Delete(ctx context.Context, id string) (int64, error)

	// AdjustCounters applies slotsDelta to the slots counter and
	// reservationsDelta to the reservations counter of the given test as a
	// single atomic document update.
	AdjustCounters(ctx context.Context, id string, slotsDelta, reservationsDelta int) error
}
