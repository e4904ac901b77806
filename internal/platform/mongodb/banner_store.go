package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// MongoBannerStore implements store.BannerStore on the banners collection.
type MongoBannerStore struct {
	coll *mongo.Collection
}

// Ensure MongoBannerStore implements store.BannerStore
var _ store.BannerStore = (*MongoBannerStore)(nil)

// NewBannerStore creates a banner store backed by the banners collection of db.
func NewBannerStore(db *mongo.Database) *MongoBannerStore {
	return &MongoBannerStore{coll: db.Collection(bannersCollection)}
}

// Insert implements store.BannerStore.Insert.
func (s *MongoBannerStore) Insert(ctx context.Context, banner *domain.Banner) error {
	res, err := s.coll.InsertOne(ctx, banner)
	if err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		banner.ID = oid
	}
	return nil
}

// List implements store.BannerStore.List.
func (s *MongoBannerStore) List(ctx context.Context) ([]domain.Banner, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	banners := []domain.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

// SetActive implements store.BannerStore.SetActive. The target banner is
// activated first, then every other banner is deactivated in a bulk update.
// Two concurrent activations can interleave between the writes and leave
// both banners active; the next activation repairs the state.
func (s *MongoBannerStore) SetActive(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isActive": true}})
	if err != nil {
		return 0, fmt.Errorf("failed to activate banner: %w", err)
	}
	if res.MatchedCount == 0 {
		return 0, store.ErrBannerNotFound
	}

	_, err = s.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$ne": oid}},
		bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return res.ModifiedCount, fmt.Errorf("failed to deactivate other banners: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete implements store.BannerStore.Delete.
func (s *MongoBannerStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete banner: %w", err)
	}
	return res.DeletedCount, nil
}
