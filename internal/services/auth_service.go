package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	users  pgrepo.UserRepository
	secret string
}

func NewAuthService(users pgrepo.UserRepository, secret string) AuthService {
	return &authService{users: users, secret: secret}
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (*models.User, string, error) {
	const op = "AuthService.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and a password of at least 8 characters are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", utils.E(utils.CodeConflict, op, "email is already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := utils.SignAccessToken(s.secret, user.ID, user.Email)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "AuthService.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", err)
	}

	token, err := utils.SignAccessToken(s.secret, user.ID, user.Email)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return user, token, nil
}
