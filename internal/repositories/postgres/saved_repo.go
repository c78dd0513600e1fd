package postgres

import (
	"context"

	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedRepository interface {
	SaveCourse(ctx context.Context, row *models.SavedCourse) error
	UnsaveCourse(ctx context.Context, userID, courseID string) error
	ListSavedCourses(ctx context.Context, userID string) ([]models.SavedCourse, error)
	CountSavedCourses(ctx context.Context, userID string) (int64, error)

	SaveProject(ctx context.Context, row *models.SavedProject) error
	ListSavedProjects(ctx context.Context, userID string) ([]models.SavedProject, error)
	SetProjectCompleted(ctx context.Context, userID, projectID string, done bool) error
	CountSavedProjects(ctx context.Context, userID string) (total, completed int64, err error)
}

type savedRepo struct {
	db *gorm.DB
}

func NewSavedRepo(db *gorm.DB) SavedRepository {
	return &savedRepo{db: db}
}

// SaveCourse relies on the (user_id, course_id) unique index; saving twice is
// absorbed instead of erroring.
func (r *savedRepo) SaveCourse(ctx context.Context, row *models.SavedCourse) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *savedRepo) UnsaveCourse(ctx context.Context, userID, courseID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.SavedCourse{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *savedRepo) ListSavedCourses(ctx context.Context, userID string) ([]models.SavedCourse, error) {
	var rows []models.SavedCourse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *savedRepo) CountSavedCourses(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedCourse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *savedRepo) SaveProject(ctx context.Context, row *models.SavedProject) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *savedRepo) ListSavedProjects(ctx context.Context, userID string) ([]models.SavedProject, error) {
	var rows []models.SavedProject
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&rows).Error
	return rows, err
}

// SetProjectCompleted distinguishes a missing pairing from a successful
// update via RowsAffected.
func (r *savedRepo) SetProjectCompleted(ctx context.Context, userID, projectID string, done bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.SavedProject{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Update("is_completed", done)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *savedRepo) CountSavedProjects(ctx context.Context, userID string) (int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.SavedProject{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&models.SavedProject{}).
		Where("user_id = ? AND is_completed = true", userID).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
