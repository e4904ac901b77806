package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobverse/jobverse-api/internal/store"
)

// parseID converts a hex identifier from the transport boundary into an
// ObjectID. Malformed input surfaces as store.ErrInvalidID, never as a
// panic further down.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}
