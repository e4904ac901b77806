package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jobverse/jobverse-api/internal/config"
)

// connectTimeout bounds the initial connection and ping at startup.
const connectTimeout = 10 * time.Second

// Collection names. The document layout predates this server and is shared
// with the client applications, hence the camelCase names.
const (
	usersCollection           = "users"
	jobsCollection            = "jobs"
	jobApplicationsCollection = "jobApplications"
	testsCollection           = "tests"
	reservationsCollection    = "reservations"
	bannersCollection         = "banners"
	healthTipsCollection      = "healthTips"
)

// Connect establishes a MongoDB client from the database configuration,
// verifies connectivity with a ping, and returns the client together with
// the application database handle. The caller owns the client and must
// Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URL).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best-effort teardown of the half-open client before reporting.
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}
