package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// HealthTipStore defines the interface for health tip retrieval.
// Tips are read-only through the API.
type HealthTipStore interface {
	// List returns all health tips.
	List(ctx context.Context) ([]domain.HealthTip, error)
}
