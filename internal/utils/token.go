package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenTTL = 24 * time.Hour

var ErrTokenInvalid = errors.New("token invalid")

type AccessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SignAccessToken issues an HS256 token with the user id as subject, the
// shape the JWT middleware expects back.
func SignAccessToken(secret, userID, email string) (string, error) {
	if secret == "" || userID == "" {
		return "", ErrTokenInvalid
	}

	now := time.Now().UTC()
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
