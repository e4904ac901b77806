package store

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/domain"
)

// BannerStore defines the interface for banner persistence.
type BannerStore interface {
	// Insert saves a new banner.
	Insert(ctx context.Context, banner *domain.Banner) error

	// List returns all banners.
	List(ctx context.Context) ([]domain.Banner, error)

	// SetActive marks the banner with the given id active, then clears the
	// active flag on every other banner. The two writes are not atomic; a
	// concurrent activation can interleave and leave more than one banner
	// active.
	// Returns the number of documents the target update modified (zero when
	// the banner was already active). Returns ErrInvalidID for malformed
	// hex, ErrBannerNotFound when the target banner does not exist.
	SetActive(ctx context.Context, id string) (int64, error)

	// Delete removes the banner with the given id and returns the number of
	// documents deleted.
	Delete(ctx context.Context, id string) (int64, error)
}
