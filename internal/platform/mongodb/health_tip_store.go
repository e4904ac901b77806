package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// MongoHealthTipStore implements store.HealthTipStore on the healthTips
// collection.
type MongoHealthTipStore struct {
	coll *mongo.Collection
}

// Ensure MongoHealthTipStore implements store.HealthTipStore
var _ store.HealthTipStore = (*MongoHealthTipStore)(nil)

// NewHealthTipStore creates a health tip store backed by the healthTips
// collection of db.
func NewHealthTipStore(db *mongo.Database) *MongoHealthTipStore {
	return &MongoHealthTipStore{coll: db.Collection(healthTipsCollection)}
}

// List implements store.HealthTipStore.List.
func (s *MongoHealthTipStore) List(ctx context.Context) ([]domain.HealthTip, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list health tips: %w", err)
	}
	tips := []domain.HealthTip{}
	if err := cursor.All(ctx, &tips); err != nil {
		return nil, fmt.Errorf("failed to decode health tips: %w", err)
	}
	return tips, nil
}
