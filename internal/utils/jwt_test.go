package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	access, err := NewAccessToken(secret, "6f1c2a4e-0b8d-4f7e-9c3a-1d2e3f4a5b6c", "alice@example.com", "USER", 60)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(Issuer), jwt.WithAudience(Issuer))
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "6f1c2a4e-0b8d-4f7e-9c3a-1d2e3f4a5b6c", claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "USER", claims["role"])
	assert.Equal(t, Issuer, claims["iss"])

	// One hour TTL within a small scheduling tolerance.
	remaining := time.Until(access.Exp)
	assert.InDelta(t, time.Hour.Seconds(), remaining.Seconds(), 5)
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	access, err := NewAccessToken("right-secret", "id", "a@b.c", "USER", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.Error(t, err)
}
