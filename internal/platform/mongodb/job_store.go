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

// MongoJobStore implements store.JobStore on the jobs collection.
type MongoJobStore struct {
	coll *mongo.Collection
}

// Ensure MongoJobStore implements store.JobStore
var _ store.JobStore = (*MongoJobStore)(nil)

// NewJobStore creates a job store backed by the jobs collection of db.
func NewJobStore(db *mongo.Database) *MongoJobStore {
	return &MongoJobStore{coll: db.Collection(jobsCollection)}
}

// Insert implements store.JobStore.Insert.
func (s *MongoJobStore) Insert(ctx context.Context, job *domain.Job) error {
	res, err := s.coll.InsertOne(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

// GetByID implements store.JobStore.GetByID.
func (s *MongoJobStore) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var job domain.Job
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// List implements store.JobStore.List.
func (s *MongoJobStore) List(ctx context.Context) ([]domain.Job, error) {
	return s.find(ctx, bson.M{})
}

// ListByRecruiter implements store.JobStore.ListByRecruiter.
func (s *MongoJobStore) ListByRecruiter(ctx context.Context, email string) ([]domain.Job, error) {
	return s.find(ctx, bson.M{"recruiterEmail": email})
}

func (s *MongoJobStore) find(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	jobs := []domain.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}

// Update implements store.JobStore.Update.
func (s *MongoJobStore) Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch})
	if err != nil {
		return 0, fmt.Errorf("failed to update job: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete implements store.JobStore.Delete.
func (s *MongoJobStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete job: %w", err)
	}
	return res.DeletedCount, nil
}

// IncrementApplicants implements store.JobStore.IncrementApplicants.
// The $inc runs as one document update, so concurrent applications to the
// same job cannot lose counts.
func (s *MongoJobStore) IncrementApplicants(ctx context.Context, id string, delta int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"applicants": delta}})
	if err != nil {
		return fmt.Errorf("failed to increment applicants: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrJobNotFound
	}
	return nil
}
