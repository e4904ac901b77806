package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobverse/jobverse-api/internal/store"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	t.Run("valid hex", func(t *testing.T) {
		t.Parallel()
		want := primitive.NewObjectID()
		got, err := parseID(want.Hex())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty string", id: ""},
		{name: "too short", id: "abc123"},
		{name: "non-hex characters", id: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "too long", id: "0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseID(tt.id)
			assert.ErrorIs(t, err, store.ErrInvalidID)
		})
	}
}

// Malformed identifiers must be rejected before any collection access, so a
// store with no live collection is enough to exercise the path.
func TestMalformedIDRejectedBeforeQuery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	jobs := &MongoJobStore{}
	_, err := jobs.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
	_, err = jobs.Update(ctx, "not-an-id", map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, store.ErrInvalidID)
	_, err = jobs.Delete(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
	assert.ErrorIs(t, jobs.IncrementApplicants(ctx, "not-an-id", 1), store.ErrInvalidID)

	tests := &MongoDiagnosticTestStore{}
	_, err = tests.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
	assert.ErrorIs(t, tests.AdjustCounters(ctx, "not-an-id", -1, 1), store.ErrInvalidID)

	reservations := &MongoReservationStore{}
	_, err = reservations.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	banners := &MongoBannerStore{}
	_, err = banners.SetActive(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}
