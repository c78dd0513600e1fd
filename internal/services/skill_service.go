package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/pathwise/internal/cache"
	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

type SkillService interface {
	List(ctx context.Context, userID string) ([]models.Skill, error)
	Add(ctx context.Context, userID, name, category, proficiency string) (*models.Skill, error)
	AddBatch(ctx context.Context, userID string, extracted []ExtractedSkill) ([]models.Skill, error)
	Remove(ctx context.Context, userID, skillID string) error
}

type skillService struct {
	skills pgrepo.SkillRepository
	cache  cache.Cache
}

func NewSkillService(skills pgrepo.SkillRepository, c cache.Cache) SkillService {
	return &skillService{skills: skills, cache: c}
}

func (s *skillService) List(ctx context.Context, userID string) ([]models.Skill, error) {
	const op = "SkillService.List"

	rows, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return rows, nil
}

func (s *skillService) Add(ctx context.Context, userID, name, category, proficiency string) (*models.Skill, error) {
	const op = "SkillService.Add"

	name = strings.TrimSpace(name)
	if userID == "" || name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and name are required", nil)
	}
	if !models.ValidCategory(category) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "category must be technical, tools or soft", nil)
	}
	if !models.ValidProficiency(proficiency) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "proficiency must be beginner, intermediate, advanced or expert", nil)
	}

	row := &models.Skill{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Category:    category,
		Proficiency: proficiency,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.skills.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}

	s.invalidate(ctx, userID)
	return row, nil
}

// AddBatch persists engine-extracted skills. The engine already validated
// category and proficiency; rows without a name are skipped here anyway.
func (s *skillService) AddBatch(ctx context.Context, userID string, extracted []ExtractedSkill) ([]models.Skill, error) {
	const op = "SkillService.AddBatch"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	now := time.Now().UTC()
	rows := make([]models.Skill, 0, len(extracted))
	for _, e := range extracted {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		rows = append(rows, models.Skill{
			ID:          uuid.NewString(),
			UserID:      userID,
			Name:        strings.TrimSpace(e.Name),
			Category:    e.Category,
			Proficiency: e.Proficiency,
			CreatedAt:   now,
		})
	}
	if len(rows) == 0 {
		return []models.Skill{}, nil
	}

	if err := s.skills.InsertBatch(ctx, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store skills", err)
	}

	s.invalidate(ctx, userID)
	return rows, nil
}

func (s *skillService) Remove(ctx context.Context, userID, skillID string) error {
	const op = "SkillService.Remove"

	if userID == "" || skillID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and skill_id are required", nil)
	}

	if err := s.skills.Delete(ctx, userID, skillID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *skillService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, cache.StatsKey(userID))
}
