package domain

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. A missing or unknown role is treated as a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Common validation errors
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
)

// User represents a registered user of either client application.
// Profile fields beyond email and role are free-form and preserved
// through the inline Extra map.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string                 `bson:"email" json:"email"`
	Role  string                 `bson:"role,omitempty" json:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate checks that the user carries a plausible email address.
// Email is the identity key; everything else is free-form profile data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmail(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// validEmail performs a minimal structural check: one @ with a dotted,
// non-empty domain. Anything stricter belongs to the client.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
