package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
	"gorm.io/gorm"
)

type RoadmapRepository interface {
	// Replace deletes every roadmap (and its steps) the user owns, then
	// inserts the new roadmap and its steps, all in one transaction. Partial
	// writes cannot survive a failure.
	Replace(ctx context.Context, userID string, roadmap *models.Roadmap, steps []models.RoadmapStep) error

	// CurrentByUser returns the user's roadmap with steps ordered by
	// order_index, or utils.ErrNotFound when none exists.
	CurrentByUser(ctx context.Context, userID string) (*models.Roadmap, []models.RoadmapStep, error)

	// SetStepCompleted flips the completion flag; ownership is enforced here
	// by resolving the step through a roadmap owned by userID.
	SetStepCompleted(ctx context.Context, userID, stepID string, done bool) error

	// CountSteps returns total and completed step counts across the user's
	// roadmaps. A user without a roadmap yields (0, 0).
	CountSteps(ctx context.Context, userID string) (total, completed int64, err error)
}

type roadmapRepo struct {
	db *gorm.DB
}

func NewRoadmapRepo(db *gorm.DB) RoadmapRepository {
	return &roadmapRepo{db: db}
}

func (r *roadmapRepo) Replace(ctx context.Context, userID string, roadmap *models.Roadmap, steps []models.RoadmapStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cascade: steps of the user's roadmaps first, then the roadmaps
		if err := tx.Where(
			"roadmap_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.Roadmap{}).
				Select("id").
				Where("user_id = ?", userID),
		).Delete(&models.RoadmapStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Roadmap{}).Error; err != nil {
			return err
		}

		if err := tx.Create(roadmap).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}

func (r *roadmapRepo) CurrentByUser(ctx context.Context, userID string) (*models.Roadmap, []models.RoadmapStep, error) {
	var roadmap models.Roadmap
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Take(&roadmap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var steps []models.RoadmapStep
	err = r.db.WithContext(ctx).
		Where("roadmap_id = ?", roadmap.ID).
		Order("order_index ASC").
		Find(&steps).Error
	return &roadmap, steps, err
}

func (r *roadmapRepo) SetStepCompleted(ctx context.Context, userID, stepID string, done bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.RoadmapStep{}).
		Where(
			"id = ? AND roadmap_id IN (?)",
			stepID,
			r.db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Roadmap{}).
				Select("id").
				Where("user_id = ?", userID),
		).
		Update("is_completed", done)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *roadmapRepo) CountSteps(ctx context.Context, userID string) (int64, int64, error) {
	owned := r.db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Roadmap{}).
		Select("id").
		Where("user_id = ?", userID)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.RoadmapStep{}).
		Where("roadmap_id IN (?)", owned).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&models.RoadmapStep{}).
		Where("roadmap_id IN (?) AND is_completed = true", owned).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
