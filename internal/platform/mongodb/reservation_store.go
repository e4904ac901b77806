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

// MongoReservationStore implements store.ReservationStore on the
// reservations collection.
type MongoReservationStore struct {
	coll *mongo.Collection
}

// Ensure MongoReservationStore implements store.ReservationStore
var _ store.ReservationStore = (*MongoReservationStore)(nil)

// NewReservationStore creates a reservation store backed by the
// reservations collection of db.
func NewReservationStore(db *mongo.Database) *MongoReservationStore {
	return &MongoReservationStore{coll: db.Collection(reservationsCollection)}
}

// Insert implements store.ReservationStore.Insert.
func (s *MongoReservationStore) Insert(ctx context.Context, reservation *domain.Reservation) error {
	res, err := s.coll.InsertOne(ctx, reservation)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reservation.ID = oid
	}
	return nil
}

// GetByID implements store.ReservationStore.GetByID.
func (s *MongoReservationStore) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var reservation domain.Reservation
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &reservation, nil
}

// List implements store.ReservationStore.List.
func (s *MongoReservationStore) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.find(ctx, bson.M{})
}

// ListByUser implements store.ReservationStore.ListByUser.
func (s *MongoReservationStore) ListByUser(ctx context.Context, email string) ([]domain.Reservation, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *MongoReservationStore) find(ctx context.Context, filter bson.M) ([]domain.Reservation, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	reservations := []domain.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// Delete implements store.ReservationStore.Delete.
func (s *MongoReservationStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reservation: %w", err)
	}
	return res.DeletedCount, nil
}
