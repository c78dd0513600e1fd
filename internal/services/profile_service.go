package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

type ProfileService interface {
	GetMe(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

type profileService struct {
	users pgrepo.UserRepository
}

func NewProfileService(users pgrepo.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) GetMe(ctx context.Context, userID string) (*models.User, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return u, nil
}

func (s *profileService) Update(ctx context.Context, u *models.User) error {
	const op = "ProfileService.Update"

	if u == nil || u.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user id is required", nil)
	}
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return nil
}
