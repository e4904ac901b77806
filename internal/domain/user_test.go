package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name:    "valid user",
			user:    User{Email: "a@b.com"},
			wantErr: nil,
		},
		{
			name:    "valid admin",
			user:    User{Email: "admin@jobverse.io", Role: RoleAdmin},
			wantErr: nil,
		},
		{
			name:    "empty email",
			user:    User{},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "missing at sign",
			user:    User{Email: "nobody.example.com"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing domain dot",
			user:    User{Email: "nobody@example"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "dot at domain edge",
			user:    User{Email: "nobody@example."},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Email: "a@b.com", Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Email: "a@b.com", Role: RoleUser}).IsAdmin())
	// Absent role means regular user.
	assert.False(t, (&User{Email: "a@b.com"}).IsAdmin())
}
