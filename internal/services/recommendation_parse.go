package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/yoockh/pathwise/internal/models"
)

const maxExtractedSkills = 20

// stripFences removes markdown code fences models like to wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var errNoList = errors.New("no array-shaped value in response")

// decodeCandidateList normalizes model output to a list. Precedence:
//  1. the whole document is a JSON array
//  2. the document is an object and one of the preferred keys holds an array
//  3. the first array-valued entry, scanning remaining keys in sorted order
//
// Anything else is a failure. All three generation operations share this so
// the shape-sniffing cannot silently diverge between them.
func decodeCandidateList(raw string, preferred ...string) ([]json.RawMessage, error) {
	raw = stripFences(raw)

	if items, ok := asList([]byte(raw)); ok {
		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("response is neither array nor object: %w", err)
	}

	for _, key := range preferred {
		if v, ok := obj[key]; ok {
			if items, ok := asList(v); ok {
				return items, nil
			}
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if items, ok := asList(obj[k]); ok {
			return items, nil
		}
	}
	return nil, errNoList
}

// asList accepts only an actual JSON array (null decodes into a nil slice
// without error, which must not count).
func asList(v []byte) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(v))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, false
	}
	return items, true
}

// flexInt tolerates integers arriving as floats or quoted strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(math.Round(v))
	return nil
}

type careerPayload struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchPercentage flexInt  `json:"matchPercentage"`
	MatchReasons    []string `json:"matchReasons"`
	RequiredSkills  []string `json:"requiredSkills"`
	SalaryRange     string   `json:"salaryRange"`
	DemandLevel     string   `json:"demandLevel"`
}

func parseCareerRecommendations(raw string) ([]CareerRecommendation, error) {
	items, err := decodeCandidateList(raw, "careers", "recommendations")
	if err != nil {
		return nil, err
	}

	out := make([]CareerRecommendation, 0, len(items))
	for _, item := range items {
		var p careerPayload
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		out = append(out, CareerRecommendation{
			Title:           strings.TrimSpace(p.Title),
			Description:     strings.TrimSpace(p.Description),
			MatchPercentage: clampPercent(int(p.MatchPercentage)),
			MatchReasons:    p.MatchReasons,
			RequiredSkills:  p.RequiredSkills,
			SalaryRange:     p.SalaryRange,
			DemandLevel:     p.DemandLevel,
		})
	}
	if len(out) == 0 {
		return nil, errors.New("no usable career entries in response")
	}
	return out, nil
}

type roadmapPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Steps       json.RawMessage `json:"steps"`
}

type stepPayload struct {
	Phase             string   `json:"phase"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	SkillsGained      []string `json:"skillsGained"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Duration          string   `json:"duration"`
}

func parseRoadmap(raw string, path *models.CareerPath) (RoadmapData, error) {
	raw = stripFences(raw)

	rd := RoadmapData{}

	var payload roadmapPayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil && payload.Steps != nil {
		rd.Title = strings.TrimSpace(payload.Title)
		rd.Description = strings.TrimSpace(payload.Description)
		if items, ok := asList(payload.Steps); ok {
			rd.Steps = parseSteps(items)
		}
	}

	if len(rd.Steps) == 0 {
		// bare array, or steps wrapped under another key
		items, err := decodeCandidateList(raw, "steps", "roadmap")
		if err != nil {
			return RoadmapData{}, err
		}
		rd.Steps = parseSteps(items)
	}

	if len(rd.Steps) == 0 {
		return RoadmapData{}, errors.New("no usable roadmap steps in response")
	}

	if rd.Title == "" {
		rd.Title = path.Title + " Roadmap"
	}
	if rd.Description == "" {
		rd.Description = "A step-by-step learning path toward " + path.Title + "."
	}
	return rd, nil
}

func parseSteps(items []json.RawMessage) []RoadmapStepData {
	out := make([]RoadmapStepData, 0, len(items))
	for _, item := range items {
		var p stepPayload
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		phase, ok := normalizePhase(p.Phase)
		if !ok || strings.TrimSpace(p.Title) == "" {
			continue
		}
		duration := p.EstimatedDuration
		if duration == "" {
			duration = p.Duration
		}
		out = append(out, RoadmapStepData{
			Phase:        phase,
			Title:        strings.TrimSpace(p.Title),
			Description:  strings.TrimSpace(p.Description),
			SkillsGained: p.SkillsGained,
			Duration:     duration,
		})
	}
	return out
}

func normalizePhase(p string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "beginner":
		return models.PhaseBeginner, true
	case "intermediate":
		return models.PhaseIntermediate, true
	case "advanced":
		return models.PhaseAdvanced, true
	}
	return "", false
}

func parseExtractedSkills(raw string) ([]ExtractedSkill, error) {
	items, err := decodeCandidateList(raw, "skills", "extracted")
	if err != nil {
		return nil, err
	}

	out := make([]ExtractedSkill, 0, len(items))
	for _, item := range items {
		var p ExtractedSkill
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		p.Category = strings.ToLower(strings.TrimSpace(p.Category))
		if !models.ValidCategory(p.Category) {
			p.Category = models.CategoryTechnical
		}
		p.Proficiency = strings.ToLower(strings.TrimSpace(p.Proficiency))
		if !models.ValidProficiency(p.Proficiency) {
			p.Proficiency = models.ProficiencyBeginner
		}
		out = append(out, p)
		if len(out) == maxExtractedSkills {
			break
		}
	}
	return out, nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
