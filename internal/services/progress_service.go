package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/pathwise/internal/cache"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

type DashboardStats struct {
	TotalSkills        int64  `json:"total_skills"`
	TotalCareerPaths   int64  `json:"total_career_paths"`
	SelectedCareerPath string `json:"selected_career_path,omitempty"`
	SavedCourses       int64  `json:"saved_courses"`
	SavedProjects      int64  `json:"saved_projects"`
	CompletedProjects  int64  `json:"completed_projects"`
	TotalSteps         int64  `json:"total_steps"`
	CompletedSteps     int64  `json:"completed_steps"`
}

// ProgressService flips completion flags and aggregates dashboard counts.
// Ownership is enforced in the repositories, not trusted from callers.
type ProgressService interface {
	ToggleStep(ctx context.Context, userID, stepID string, done bool) error
	ToggleProject(ctx context.Context, userID, projectID string, done bool) error
	DashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
}

type progressService struct {
	skills      pgrepo.SkillRepository
	careerPaths pgrepo.CareerPathRepository
	roadmaps    pgrepo.RoadmapRepository
	saved       pgrepo.SavedRepository
	cache       cache.Cache
}

const statsCacheTTL = 60 * time.Second

func NewProgressService(
	skills pgrepo.SkillRepository,
	careerPaths pgrepo.CareerPathRepository,
	roadmaps pgrepo.RoadmapRepository,
	saved pgrepo.SavedRepository,
	c cache.Cache,
) ProgressService {
	return &progressService{
		skills:      skills,
		careerPaths: careerPaths,
		roadmaps:    roadmaps,
		saved:       saved,
		cache:       c,
	}
}

func (s *progressService) ToggleStep(ctx context.Context, userID, stepID string, done bool) error {
	const op = "ProgressService.ToggleStep"

	if userID == "" || stepID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and step_id are required", nil)
	}

	if err := s.roadmaps.SetStepCompleted(ctx, userID, stepID, done); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "roadmap step not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update step", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *progressService) ToggleProject(ctx context.Context, userID, projectID string, done bool) error {
	const op = "ProgressService.ToggleProject"

	if userID == "" || projectID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and project_id are required", nil)
	}

	if err := s.saved.SetProjectCompleted(ctx, userID, projectID, done); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "saved project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update saved project", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *progressService) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	const op = "ProgressService.DashboardStats"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	key := cache.StatsKey(userID)
	if s.cache != nil {
		var cached DashboardStats
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	out := &DashboardStats{}

	var err error
	if out.TotalSkills, err = s.skills.CountByUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count skills", err)
	}
	if out.TotalCareerPaths, err = s.careerPaths.CountByUser(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count career paths", err)
	}
	if out.SavedCourses, err = s.saved.CountSavedCourses(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count saved courses", err)
	}
	if out.SavedProjects, out.CompletedProjects, err = s.saved.CountSavedProjects(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count saved projects", err)
	}

	// no roadmap is not an error: counts stay at zero
	if out.TotalSteps, out.CompletedSteps, err = s.roadmaps.CountSteps(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count roadmap steps", err)
	}

	if selected, err := s.careerPaths.SelectedByUser(ctx, userID); err == nil {
		out.SelectedCareerPath = selected.Title
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load selected career path", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, statsCacheTTL)
	}
	return out, nil
}

func (s *progressService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, cache.StatsKey(userID))
}
