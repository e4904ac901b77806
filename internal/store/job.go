package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// JobStore defines the interface for job posting persistence.
type JobStore interface {
	// Insert saves a new job posting and fills in its generated ID.
	Insert(ctx context.Context, job *domain.Job) error

	// GetByID retrieves a job by its hex identifier.
	// Returns ErrInvalidID for malformed hex, ErrJobNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Job, error)

	// List returns all job postings.
	List(ctx context.Context) ([]domain.Job, error)

	// ListByRecruiter returns the jobs owned by the given recruiter email.
	ListByRecruiter(ctx context.Context, email string) ([]domain.Job, error)

	// Update applies a partial patch to the job with the given id and
	// returns the number of documents modified.
	Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error)

	// Delete removes the job with the given id and returns the number of
	// documents deleted.
	Delete(ctx context.Context, id string) (int64, error)

	// IncrementApplicants adjusts the job's applicants counter by delta as
	// a single atomic document update.
	IncrementApplicants(ctx context.Context, id string, delta int) error
}
