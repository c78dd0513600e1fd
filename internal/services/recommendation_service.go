package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/providers/llm"
	mongorepo "github.com/yoockh/pathwise/internal/repositories/mongo"
)

// CareerRecommendation is one generated career candidate. Field tags follow
// the JSON contract the model is instructed to produce.
type CareerRecommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchReasons    []string `json:"matchReasons"`
	RequiredSkills  []string `json:"requiredSkills"`
	SalaryRange     string   `json:"salaryRange"`
	DemandLevel     string   `json:"demandLevel"`
}

type RoadmapData struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Steps       []RoadmapStepData `json:"steps"`
}

type RoadmapStepData struct {
	Phase        string   `json:"phase"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	SkillsGained []string `json:"skillsGained"`
	Duration     string   `json:"estimatedDuration"`
}

type ExtractedSkill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

// RecommendationService wraps the generative provider. Career and roadmap
// generation never fail: a broken upstream degrades to deterministic
// fallbacks. Extraction degrades to an empty list instead.
type RecommendationService interface {
	GenerateCareerRecommendations(ctx context.Context, user *models.User, skills []models.Skill) []CareerRecommendation
	GenerateRoadmap(ctx context.Context, path *models.CareerPath, skills []models.Skill) RoadmapData
	ExtractSkillsFromText(ctx context.Context, userID, text string) []ExtractedSkill
}

type recommendationService struct {
	provider llm.Provider
	logs     mongorepo.GenerationLogRepository
	log      *logrus.Logger
	timeout  time.Duration
}

const defaultGenerationTimeout = 30 * time.Second

func NewRecommendationService(provider llm.Provider, logs mongorepo.GenerationLogRepository, log *logrus.Logger) RecommendationService {
	return &recommendationService{
		provider: provider,
		logs:     logs,
		log:      log,
		timeout:  defaultGenerationTimeout,
	}
}

var errNoProvider = errors.New("generation provider is not configured")

func (s *recommendationService) complete(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil {
		return "", errNoProvider
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.Complete(cctx, prompt)
}

// audit records the call outcome; failures are logged, never surfaced.
func (s *recommendationService) audit(ctx context.Context, userID, kind, status string, respBytes int, started time.Time) {
	if s.logs == nil {
		return
	}
	row := &models.GenerationLog{
		UserID:           userID,
		Kind:             kind,
		Status:           status,
		ResponseBytes:    respBytes,
		ProcessingTimeMS: time.Since(started).Milliseconds(),
	}
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.logs.Insert(actx, row); err != nil && s.log != nil {
		s.log.WithError(err).Warn("generation audit insert failed")
	}
}

func (s *recommendationService) GenerateCareerRecommendations(ctx context.Context, user *models.User, skills []models.Skill) []CareerRecommendation {
	started := time.Now()
	userID := ""
	if user != nil {
		userID = user.ID
	}

	prompt := buildCareerPrompt(user, skills)

	raw, err := s.complete(ctx, prompt)
	if err == nil {
		recs, perr := parseCareerRecommendations(raw)
		if perr == nil {
			s.audit(ctx, userID, models.GenKindCareers, models.GenStatusDone, len(raw), started)
			return recs
		}
		err = perr
	}

	if s.log != nil {
		s.log.WithError(err).WithField("user_id", userID).
			Warn("career generation failed, using keyword fallback")
	}
	s.audit(ctx, userID, models.GenKindCareers, models.GenStatusFallback, 0, started)
	return fallbackCareerRecommendations(skills)
}

func (s *recommendationService) GenerateRoadmap(ctx context.Context, path *models.CareerPath, skills []models.Skill) RoadmapData {
	started := time.Now()

	prompt := buildRoadmapPrompt(path, skills)

	raw, err := s.complete(ctx, prompt)
	if err == nil {
		rd, perr := parseRoadmap(raw, path)
		if perr == nil {
			s.audit(ctx, path.UserID, models.GenKindRoadmap, models.GenStatusDone, len(raw), started)
			return rd
		}
		err = perr
	}

	if s.log != nil {
		s.log.WithError(err).WithField("user_id", path.UserID).
			Warn("roadmap generation failed, using template fallback")
	}
	s.audit(ctx, path.UserID, models.GenKindRoadmap, models.GenStatusFallback, 0, started)
	return fallbackRoadmap(path)
}

func (s *recommendationService) ExtractSkillsFromText(ctx context.Context, userID, text string) []ExtractedSkill {
	started := time.Now()

	prompt := buildExtractPrompt(text)

	raw, err := s.complete(ctx, prompt)
	if err == nil {
		out, perr := parseExtractedSkills(raw)
		if perr == nil {
			s.audit(ctx, userID, models.GenKindExtract, models.GenStatusDone, len(raw), started)
			return out
		}
		err = perr
	}

	// no synthetic fallback here: zero skills is a user-visible soft outcome
	if s.log != nil {
		s.log.WithError(err).WithField("user_id", userID).
			Warn("skill extraction failed, returning no skills")
	}
	s.audit(ctx, userID, models.GenKindExtract, models.GenStatusFailed, 0, started)
	return []ExtractedSkill{}
}
