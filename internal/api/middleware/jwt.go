package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yoockh/pathwise/internal/utils"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// JWTAuth resolves the bearer token to a user id or rejects the request.
// Tokens are the HS256 access tokens issued by the auth endpoints.
func JWTAuth() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{
				Code:    utils.CodeInternal,
				Message: "JWT_SECRET is not set",
			})
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims := &utils.AccessClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || tok == nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid token",
			})
			return
		}

		userID := claims.Subject
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing subject",
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
