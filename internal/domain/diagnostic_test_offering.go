package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiagnosticTest is a bookable diagnostic-test offering. Slots counts the
// remaining capacity and Reservations the bookings taken; both are mutated
// together, as one atomic document update, when a reservation is created or
// cancelled.
type DiagnosticTest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price,omitempty" json:"price,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Date         string             `bson:"date,omitempty" json:"date,omitempty"`
	Slots        int                `bson:"slots" json:"slots"`
	Reservations int                `bson:"reservations" json:"reservations"`
}
