package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/pathwise/internal/cache"
	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/utils"
)

// CareerService owns the recommendation lifecycle: generate-and-replace,
// selection (single-selected invariant) and roadmap materialization.
type CareerService interface {
	Generate(ctx context.Context, userID string) ([]models.CareerPath, error)
	List(ctx context.Context, userID string) ([]models.CareerPath, error)
	Select(ctx context.Context, userID, careerPathID string) (*models.Roadmap, []models.RoadmapStep, error)
	CurrentRoadmap(ctx context.Context, userID string) (*models.Roadmap, []models.RoadmapStep, error)
}

type careerService struct {
	users       pgrepo.UserRepository
	skills      pgrepo.SkillRepository
	careerPaths pgrepo.CareerPathRepository
	roadmaps    pgrepo.RoadmapRepository
	engine      RecommendationService
	cache       cache.Cache
}

func NewCareerService(
	users pgrepo.UserRepository,
	skills pgrepo.SkillRepository,
	careerPaths pgrepo.CareerPathRepository,
	roadmaps pgrepo.RoadmapRepository,
	engine RecommendationService,
	c cache.Cache,
) CareerService {
	return &careerService{
		users:       users,
		skills:      skills,
		careerPaths: careerPaths,
		roadmaps:    roadmaps,
		engine:      engine,
		cache:       c,
	}
}

func (s *careerService) Generate(ctx context.Context, userID string) ([]models.CareerPath, error) {
	const op = "CareerService.Generate"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}
	if len(skills) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "add skills first to generate recommendations", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	recs := s.engine.GenerateCareerRecommendations(ctx, user, skills)

	// persistence order is by match percentage, best first
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})

	now := time.Now().UTC()
	rows := make([]models.CareerPath, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, models.CareerPath{
			ID:              uuid.NewString(),
			UserID:          userID,
			Title:           rec.Title,
			Description:     rec.Description,
			MatchPercentage: rec.MatchPercentage,
			MatchReasons:    rec.MatchReasons,
			RequiredSkills:  rec.RequiredSkills,
			SalaryRange:     rec.SalaryRange,
			DemandLevel:     rec.DemandLevel,
			CreatedAt:       now,
		})
	}

	if err := s.careerPaths.Replace(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store recommendations", err)
	}

	s.invalidateStats(ctx, userID)
	return rows, nil
}

func (s *careerService) List(ctx context.Context, userID string) ([]models.CareerPath, error) {
	const op = "CareerService.List"

	rows, err := s.careerPaths.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list career paths", err)
	}
	return rows, nil
}

// Select marks one career path as the user's choice and materializes a fresh
// roadmap for it. Selecting again regenerates; there is no idempotence.
func (s *careerService) Select(ctx context.Context, userID, careerPathID string) (*models.Roadmap, []models.RoadmapStep, error) {
	const op = "CareerService.Select"

	if userID == "" || careerPathID == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "user_id and career_path_id are required", nil)
	}

	path, err := s.careerPaths.GetByID(ctx, userID, careerPathID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "career path not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load career path", err)
	}

	if err := s.careerPaths.Select(ctx, userID, careerPathID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "career path not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to select career path", err)
	}

	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}

	data := s.engine.GenerateRoadmap(ctx, path, skills)

	pathID := path.ID
	roadmap := &models.Roadmap{
		ID:           uuid.NewString(),
		UserID:       userID,
		CareerPathID: &pathID,
		Title:        data.Title,
		Description:  data.Description,
		CreatedAt:    time.Now().UTC(),
	}

	// order_index is the 0-based position in the generated step array; the
	// generated phase grouping is preserved as-is, no re-sort.
	steps := make([]models.RoadmapStep, 0, len(data.Steps))
	for i, st := range data.Steps {
		steps = append(steps, models.RoadmapStep{
			ID:           uuid.NewString(),
			RoadmapID:    roadmap.ID,
			Phase:        st.Phase,
			Title:        st.Title,
			Description:  st.Description,
			SkillsGained: st.SkillsGained,
			Duration:     st.Duration,
			OrderIndex:   i,
		})
	}

	if err := s.roadmaps.Replace(ctx, userID, roadmap, steps); err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to generate roadmap", err)
	}

	s.invalidateStats(ctx, userID)
	return roadmap, steps, nil
}

func (s *careerService) CurrentRoadmap(ctx context.Context, userID string) (*models.Roadmap, []models.RoadmapStep, error) {
	const op = "CareerService.CurrentRoadmap"

	roadmap, steps, err := s.roadmaps.CurrentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "no roadmap yet, select a career path first", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load roadmap", err)
	}
	return roadmap, steps, nil
}

func (s *careerService) invalidateStats(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, cache.StatsKey(userID))
}
