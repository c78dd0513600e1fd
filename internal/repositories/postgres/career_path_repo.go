package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
	"gorm.io/gorm"
)

type CareerPathRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.CareerPath, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	GetByID(ctx context.Context, userID, id string) (*models.CareerPath, error)
	SelectedByUser(ctx context.Context, userID string) (*models.CareerPath, error)

	// Replace drops every career path the user owns and inserts the new batch
	// in one transaction. Selection is reset by construction.
	Replace(ctx context.Context, userID string, rows []models.CareerPath) error

	// Select clears is_selected on all of the user's paths and sets it on one,
	// inside a single transaction, so two selected rows cannot coexist.
	Select(ctx context.Context, userID, id string) error
}

type careerPathRepo struct {
	db *gorm.DB
}

func NewCareerPathRepo(db *gorm.DB) CareerPathRepository {
	return &careerPathRepo{db: db}
}

func (r *careerPathRepo) ListByUser(ctx context.Context, userID string) ([]models.CareerPath, error) {
	var rows []models.CareerPath
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("match_percentage DESC").
		Find(&rows).Error
	return rows, err
}

func (r *careerPathRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CareerPath{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *careerPathRepo) GetByID(ctx context.Context, userID, id string) (*models.CareerPath, error) {
	var row models.CareerPath
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *careerPathRepo) SelectedByUser(ctx context.Context, userID string) (*models.CareerPath, error) {
	var row models.CareerPath
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_selected = true", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *careerPathRepo) Replace(ctx context.Context, userID string, rows []models.CareerPath) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CareerPath{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *careerPathRepo) Select(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CareerPath{}).
			Where("user_id = ?", userID).
			Update("is_selected", false).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CareerPath{}).
			Where("user_id = ? AND id = ?", userID, id).
			Update("is_selected", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return nil
	})
}
