package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobverse/jobverse-api/internal/config"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

func newTestService(t *testing.T, secret string, timeFunc func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)
	if timeFunc != nil {
		impl.timeFunc = timeFunc
	}
	return impl
}

func TestNewJWTService_SecretTooShort(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, testSecret, nil)

	token, err := svc.GenerateToken(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "a@b.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second,
		"token should expire one hour after issuance")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuer := newTestService(t, testSecret, nil)
	verifier := newTestService(t, "anentirelydifferentsecretthatis32chars!", nil)

	token, err := issuer.GenerateToken(ctx, "a@b.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	issuedAt := time.Now().Add(-2 * time.Hour)
	issuer := newTestService(t, testSecret, func() time.Time { return issuedAt })

	token, err := issuer.GenerateToken(ctx, "a@b.com")
	require.NoError(t, err)

	// Verify with the real clock: the one-hour lifetime plus clock skew has
	// long passed.
	verifier := newTestService(t, testSecret, nil)
	_, err = verifier.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, testSecret, nil)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9.eyJlbWFpbCI6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
