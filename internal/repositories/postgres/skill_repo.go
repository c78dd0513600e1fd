package postgres

import (
	"context"

	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
	"gorm.io/gorm"
)

type SkillRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Skill, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Insert(ctx context.Context, s *models.Skill) error
	InsertBatch(ctx context.Context, rows []models.Skill) error
	Delete(ctx context.Context, userID, id string) error
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	var rows []models.Skill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *skillRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *skillRepo) Insert(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *skillRepo) InsertBatch(ctx context.Context, rows []models.Skill) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// Delete is scoped by owner; deleting someone else's skill is a not-found.
func (r *skillRepo) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
