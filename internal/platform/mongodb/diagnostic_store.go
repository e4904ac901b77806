package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobverse/jobverse-api/internal/domain"
	"github.com/jobverse/jobverse-api/internal/store"
)

// MongoDiagnosticTestStore implements store.DiagnosticTestStore on the
// tests collection.
type MongoDiagnosticTestStore struct {
	coll *mongo.Collection
}

// Ensure MongoDiagnosticTestStore implements store.DiagnosticTestStore
var _ store.DiagnosticTestStore = (*MongoDiagnosticTestStore)(nil)

// NewDiagnosticTestStore creates a test store backed by the tests
// collection of db.
func NewDiagnosticTestStore(db *mongo.Database) *MongoDiagnosticTestStore {
	return &MongoDiagnosticTestStore{coll: db.Collection(testsCollection)}
}

// Insert implements store.DiagnosticTestStore.Insert.
func (s *MongoDiagnosticTestStore) Insert(ctx context.Context, test *domain.DiagnosticTest) error {
	res, err := s.coll.InsertOne(ctx, test)
	if err != nil {
		return fmt.Errorf("failed to insert diagnostic test: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		test.ID = oid
	}
	return nil
}

// GetByID implements store.DiagnosticTestStore.GetByID.
func (s *MongoDiagnosticTestStore) GetByID(ctx context.Context, id string) (*domain.DiagnosticTest, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var test domain.DiagnosticTest
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&test)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get diagnostic test: %w", err)
	}
	return &test, nil
}

// List implements store.DiagnosticTestStore.List.
func (s *MongoDiagnosticTestStore) List(ctx context.Context) ([]domain.DiagnosticTest, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnostic tests: %w", err)
	}
	tests := []domain.DiagnosticTest{}
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, fmt.Errorf("failed to decode diagnostic tests: %w", err)
	}
	return tests, nil
}

// Delete implements store.DiagnosticTestStore.Delete.
func (s *MongoDiagnosticTestStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete diagnostic test: %w", err)
	}
	return res.DeletedCount, nil
}

// AdjustCounters implements store.DiagnosticTestStore.AdjustCounters.
// Both counters move in one $inc update so a reservation can never be
// observed with only half its counter effects applied to the test document.
func (s *MongoDiagnosticTestStore) AdjustCounters(ctx context.Context, id string, slotsDelta, reservationsDelta int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": bson.M{
			"slots":        slotsDelta,
			"reservations": reservationsDelta,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to adjust test counters: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrTestNotFound
	}
	return nil
}
