package postgres

import (
	"context"

	"github.com/yoockh/pathwise/internal/models"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Insert(ctx context.Context, row *models.Resume) error
	LatestByUser(ctx context.Context, userID string) (*models.Resume, error)
}

type resumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Insert(ctx context.Context, row *models.Resume) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *resumeRepo) LatestByUser(ctx context.Context, userID string) (*models.Resume, error) {
	var row models.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_at DESC").
		Take(&row).Error
	return &row, err
}
