package token_adapter

import (
	"context"
	"listings-service/internal/core/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-secret", "listings-test")
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, &domain.AdminUser{Email: "admin@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, &domain.Claims{Email: "admin@example.com", Role: domain.RoleAdmin}, claims)
}

func TestTokenExpired(t *testing.T) {
	svc, err := NewTokenService("test-secret", "")
	require.NoError(t, err)
	ctx := context.Background()

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateToken(ctx, &domain.AdminUser{Email: "admin@example.com"}, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenWrongKeyOrIssuer(t *testing.T) {
	ctx := context.Background()
	issuer, _ := NewTokenService("key-a", "svc")
	otherKey, _ := NewTokenService("key-b", "svc")
	otherIssuer, _ := NewTokenService("key-a", "another")

	token, err := issuer.GenerateToken(ctx, &domain.AdminUser{Email: "admin@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = otherKey.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = otherIssuer.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = issuer.ValidateToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenRejectsNoneAlgorithm(t *testing.T) {
	svc, _ := NewTokenService("key", "svc")
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x", "role": "admin", "iss": "svc"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestNewTokenServiceRequiresKey(t *testing.T) {
	_, err := NewTokenService("", "svc")
	assert.Error(t, err)
}
