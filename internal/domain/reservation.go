package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyTestID        = errors.New("test id cannot be empty")
	ErrEmptyReserverEmail = errors.New("reserving user email cannot be empty")
)

// Reservation books one slot of a diagnostic test for a user. Deleting a
// reservation reverses the slot and reservation counters on the referenced
// test.
type Reservation struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	TestID    primitive.ObjectID     `bson:"testId" json:"testId"`
	UserEmail string                 `bson:"userEmail" json:"userEmail"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

// Validate checks the reference fields; reservation metadata is free-form.
func (r *Reservation) Validate() error {
	if r.TestID.IsZero() {
		return ErrEmptyTestID
	}
	if r.UserEmail == "" {
		return ErrEmptyReserverEmail
	}
	return nil
}
