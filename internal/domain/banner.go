package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyBannerTitle indicates a banner was submitted without a title.
var ErrEmptyBannerTitle = errors.New("banner title cannot be empty")

// Banner is a promotional banner shown by the booking client. The system
// keeps at most one banner active at a time; activation is best effort and
// a concurrent activation of two banners can briefly leave both active.
type Banner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Content  string             `bson:"content,omitempty" json:"content,omitempty"`
	ImageURL string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}

// Validate checks that the banner carries the minimum fields the clients
// depend on.
func (b *Banner) Validate() error {
	if b.Title == "" {
		return ErrEmptyBannerTitle
	}
	return nil
}
