package services

import (
	"strings"

	"github.com/yoockh/pathwise/internal/models"
)

// Keyword families for the deterministic career fallback. Matching is a
// case-insensitive substring test against skill names.
var (
	webKeywords  = []string{"javascript", "react", "node", "html", "css", "typescript", "frontend", "web"}
	dataKeywords = []string{"python", "sql", "data", "pandas", "excel", "statistics", "analytics"}
)

// fallbackCareerRecommendations never returns an empty list: one entry per
// matched keyword family, or the generic suggestion when nothing matches.
func fallbackCareerRecommendations(skills []models.Skill) []CareerRecommendation {
	var out []CareerRecommendation

	if hasAnyKeyword(skills, webKeywords) {
		out = append(out, CareerRecommendation{
			Title:           "Full-Stack Developer",
			Description:     "Builds complete web applications across the frontend and the backend. Works with browser technologies, APIs and databases to ship end-to-end features.",
			MatchPercentage: 85,
			MatchReasons: []string{
				"Your skills include core web technologies",
				"Full-stack roles build directly on frontend and backend foundations",
				"Strong, steady demand across companies of every size",
			},
			RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "Git", "REST APIs"},
			SalaryRange:    "$70,000 - $130,000",
			DemandLevel:    "High",
		})
	}

	if hasAnyKeyword(skills, dataKeywords) {
		out = append(out, CareerRecommendation{
			Title:           "Data Analyst",
			Description:     "Turns raw data into decisions through queries, analysis and reporting. Partners with business teams to answer questions with evidence.",
			MatchPercentage: 80,
			MatchReasons: []string{
				"Your skills include data tooling",
				"Analyst roles reward SQL and scripting fluency",
				"Data-driven teams keep hiring for this role",
			},
			RequiredSkills: []string{"SQL", "Python", "Excel", "Data Visualization", "Statistics"},
			SalaryRange:    "$60,000 - $105,000",
			DemandLevel:    "High",
		})
	}

	if len(out) == 0 {
		out = append(out, CareerRecommendation{
			Title:           "Software Developer",
			Description:     "Designs, writes and maintains software across a range of domains. A broad, flexible starting point that branches into many specializations.",
			MatchPercentage: 70,
			MatchReasons: []string{
				"Your skill set transfers to general software work",
				"Broad entry point with many specialization paths",
				"Programming fundamentals stay valuable everywhere",
			},
			RequiredSkills: []string{"Programming Fundamentals", "Git", "Problem Solving", "Testing"},
			SalaryRange:    "$60,000 - $115,000",
			DemandLevel:    "Medium",
		})
	}

	return out
}

func hasAnyKeyword(skills []models.Skill, keywords []string) bool {
	for _, s := range skills {
		name := strings.ToLower(s.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}

// fallbackRoadmap is the fixed 9-step template: 3 steps per phase, with the
// subject-specific steps filled by slicing the career path's required skills
// (out-of-range slices yield an empty list, which is fine).
func fallbackRoadmap(path *models.CareerPath) RoadmapData {
	req := path.RequiredSkills

	return RoadmapData{
		Title:       path.Title + " Roadmap",
		Description: "A phased learning path toward a career as " + path.Title + ".",
		Steps: []RoadmapStepData{
			{
				Phase:        models.PhaseBeginner,
				Title:        "Foundation Skills",
				Description:  "Learn the fundamental concepts behind the field. Build the vocabulary and mental models everything else rests on.",
				SkillsGained: sliceRange(req, 0, 2),
				Duration:     "2-4 weeks",
			},
			{
				Phase:        models.PhaseBeginner,
				Title:        "Essential Tools",
				Description:  "Set up and get comfortable with the everyday toolchain. Version control, editors and the basic workflow.",
				SkillsGained: []string{"Git", "Command Line"},
				Duration:     "1-2 weeks",
			},
			{
				Phase:        models.PhaseBeginner,
				Title:        "Basic Projects",
				Description:  "Apply what you learned in small, self-contained projects. Finish things end to end and build early confidence.",
				SkillsGained: []string{"Project Structure", "Debugging"},
				Duration:     "3-4 weeks",
			},
			{
				Phase:        models.PhaseIntermediate,
				Title:        "Advanced Concepts",
				Description:  "Go deeper into the core techniques of the field. Understand the trade-offs behind common patterns.",
				SkillsGained: sliceRange(req, 2, 4),
				Duration:     "4-6 weeks",
			},
			{
				Phase:        models.PhaseIntermediate,
				Title:        "Real-World Projects",
				Description:  "Build larger projects that resemble production work. Integrate external services and handle real data.",
				SkillsGained: []string{"API Integration", "Data Handling"},
				Duration:     "4-8 weeks",
			},
			{
				Phase:        models.PhaseIntermediate,
				Title:        "Collaboration Skills",
				Description:  "Work the way teams work. Code review, issue tracking and communicating technical decisions.",
				SkillsGained: []string{"Code Review", "Agile Basics"},
				Duration:     "2-3 weeks",
			},
			{
				Phase:        models.PhaseAdvanced,
				Title:        "Specialization",
				Description:  "Pick a niche within the field and go deep. Depth in one area is what separates senior candidates.",
				SkillsGained: sliceRange(req, 4, 6),
				Duration:     "6-8 weeks",
			},
			{
				Phase:        models.PhaseAdvanced,
				Title:        "Industry Best Practices",
				Description:  "Learn how professionals keep quality high at scale. Testing strategy, performance and security awareness.",
				SkillsGained: []string{"Testing", "Performance", "Security Basics"},
				Duration:     "3-4 weeks",
			},
			{
				Phase:        models.PhaseAdvanced,
				Title:        "Career Preparation",
				Description:  "Package the work into a portfolio and prepare for interviews. Practice explaining your projects and decisions.",
				SkillsGained: []string{"Portfolio", "Interviewing"},
				Duration:     "2-3 weeks",
			},
		},
	}
}

func sliceRange(list []string, lo, hi int) []string {
	if lo >= len(list) {
		return []string{}
	}
	if hi > len(list) {
		hi = len(list)
	}
	out := make([]string, hi-lo)
	copy(out, list[lo:hi])
	return out
}
