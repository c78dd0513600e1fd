package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAccessToken_RoundTrip(t *testing.T) {
	tok, err := SignAccessToken("secret", "user-123", "a@b.com")
	require.NoError(t, err)

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestSignAccessToken_RejectsMissingInputs(t *testing.T) {
	_, err := SignAccessToken("", "user-123", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = SignAccessToken("secret", "", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSignAccessToken_WrongSecretFails(t *testing.T) {
	tok, err := SignAccessToken("secret", "user-123", "")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tok, &AccessClaims{}, func(*jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}
