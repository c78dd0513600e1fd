package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
	"gorm.io/gorm"
)

type CatalogRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	var rows []models.Course
	err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var row models.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *catalogRepo) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var row models.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}
