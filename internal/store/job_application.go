package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// JobApplicationStore defines the interface for job application persistence.
// Applications are insert-only.
type JobApplicationStore interface {
	// Insert saves a new application and fills in its generated ID.
	Insert(ctx context.Context, application *domain.JobApplication) error

	// ListByApplicant returns the applications submitted by the given email.
	ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error)
}
