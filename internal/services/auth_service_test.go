package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/pathwise/internal/utils"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "  Alice@Example.COM ", "correcthorse", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correcthorse", user.PasswordHash)

	// login is case-insensitive on email
	logged, token2, err := svc.Login(ctx, "ALICE@example.com", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token2)
}

func TestAuthRegister_Validation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "correcthorse", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, _, err = svc.Register(ctx, "bob@example.com", "short", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "bob@example.com", "correcthorse", "Bob")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "bob@example.com", "anotherpass123", "Bob Again")
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "bob@example.com", "correcthorse", "Bob")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "bob@example.com", "wrongpassword")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))

	_, _, err = svc.Login(ctx, "nobody@example.com", "correcthorse")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}
