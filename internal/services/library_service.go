package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/pathwise/internal/cache"
	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

// LibraryService exposes the seeded catalog and each user's saved items.
type LibraryService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListProjects(ctx context.Context) ([]models.Project, error)

	SaveCourse(ctx context.Context, userID, courseID string) (*models.SavedCourse, error)
	UnsaveCourse(ctx context.Context, userID, courseID string) error
	ListSavedCourses(ctx context.Context, userID string) ([]models.SavedCourse, error)

	SaveProject(ctx context.Context, userID, projectID string) (*models.SavedProject, error)
	ListSavedProjects(ctx context.Context, userID string) ([]models.SavedProject, error)
}

type libraryService struct {
	catalog pgrepo.CatalogRepository
	saved   pgrepo.SavedRepository
	cache   cache.Cache
}

func NewLibraryService(catalog pgrepo.CatalogRepository, saved pgrepo.SavedRepository, c cache.Cache) LibraryService {
	return &libraryService{catalog: catalog, saved: saved, cache: c}
}

func (s *libraryService) ListCourses(ctx context.Context) ([]models.Course, error) {
	const op = "LibraryService.ListCourses"

	rows, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list courses", err)
	}
	return rows, nil
}

func (s *libraryService) ListProjects(ctx context.Context) ([]models.Project, error) {
	const op = "LibraryService.ListProjects"

	rows, err := s.catalog.ListProjects(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return rows, nil
}

func (s *libraryService) SaveCourse(ctx context.Context, userID, courseID string) (*models.SavedCourse, error) {
	const op = "LibraryService.SaveCourse"

	if userID == "" || courseID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and course_id are required", nil)
	}

	if _, err := s.catalog.GetCourse(ctx, courseID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "course not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load course", err)
	}

	row := &models.SavedCourse{
		ID:       uuid.NewString(),
		UserID:   userID,
		CourseID: courseID,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.saved.SaveCourse(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save course", err)
	}

	s.invalidate(ctx, userID)
	return row, nil
}

func (s *libraryService) UnsaveCourse(ctx context.Context, userID, courseID string) error {
	const op = "LibraryService.UnsaveCourse"

	if userID == "" || courseID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and course_id are required", nil)
	}

	if err := s.saved.UnsaveCourse(ctx, userID, courseID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "saved course not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to remove saved course", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *libraryService) ListSavedCourses(ctx context.Context, userID string) ([]models.SavedCourse, error) {
	const op = "LibraryService.ListSavedCourses"

	rows, err := s.saved.ListSavedCourses(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list saved courses", err)
	}
	return rows, nil
}

func (s *libraryService) SaveProject(ctx context.Context, userID, projectID string) (*models.SavedProject, error) {
	const op = "LibraryService.SaveProject"

	if userID == "" || projectID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and project_id are required", nil)
	}

	if _, err := s.catalog.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load project", err)
	}

	row := &models.SavedProject{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProjectID: projectID,
		SavedAt:   time.Now().UTC(),
	}
	if err := s.saved.SaveProject(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save project", err)
	}

	s.invalidate(ctx, userID)
	return row, nil
}

func (s *libraryService) ListSavedProjects(ctx context.Context, userID string) ([]models.SavedProject, error) {
	const op = "LibraryService.ListSavedProjects"

	rows, err := s.saved.ListSavedProjects(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list saved projects", err)
	}
	return rows, nil
}

func (s *libraryService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, cache.StatsKey(userID))
}
