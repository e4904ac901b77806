package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthTip is static informational content served read-only to clients.
type HealthTip struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content,omitempty" json:"content,omitempty"`
}
