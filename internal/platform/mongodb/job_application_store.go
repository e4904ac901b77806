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

// MongoJobApplicationStore implements store.JobApplicationStore on the
// jobApplications collection.
type MongoJobApplicationStore struct {
	coll *mongo.Collection
}

// Ensure MongoJobApplicationStore implements store.JobApplicationStore
var _ store.JobApplicationStore = (*MongoJobApplicationStore)(nil)

// NewJobApplicationStore creates an application store backed by the
// jobApplications collection of db.
func NewJobApplicationStore(db *mongo.Database) *MongoJobApplicationStore {
	return &MongoJobApplicationStore{coll: db.Collection(jobApplicationsCollection)}
}

// Insert implements store.JobApplicationStore.Insert.
func (s *MongoJobApplicationStore) Insert(ctx context.Context, application *domain.JobApplication) error {
	res, err := s.coll.InsertOne(ctx, application)
	if err != nil {
		return fmt.Errorf("failed to insert job application: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		application.ID = oid
	}
	return nil
}

// ListByApplicant implements store.JobApplicationStore.ListByApplicant.
func (s *MongoJobApplicationStore) ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"applicantEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	applications := []domain.JobApplication{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("failed to decode job applications: %w", err)
	}
	return applications, nil
}
