package services

import (
	"fmt"
	"strings"

	"github.com/yoockh/pathwise/internal/models"
)

// maxResumeChars bounds the text sent for extraction. Longer resumes are
// analyzed only partially; accepted limitation.
const maxResumeChars = 4000

const careerPromptTemplate = `You are a career advisor. Based on the candidate profile and skills below, suggest 3 to 5 suitable career paths.

Return ONLY a JSON array. Each element must have exactly these fields:
"title" (string), "description" (2-3 sentences), "matchPercentage" (integer 0-100), "matchReasons" (array of exactly 3 strings), "requiredSkills" (array of strings), "salaryRange" (string, e.g. "$70,000 - $110,000"), "demandLevel" (one of "High", "Medium", "Low").

Candidate profile:
%s

Skills:
%s`

const roadmapPromptTemplate = `You are a career mentor. Create a learning roadmap for the career path below, taking the learner's current skills into account.

Return ONLY a JSON object with fields "title" (string), "description" (string), and "steps" (array of 9 to 12 objects). Distribute the steps across the phases "Beginner", "Intermediate" and "Advanced", 3 to 4 steps per phase, in that order. Each step must have: "phase", "title", "description" (2-3 sentences), "skillsGained" (array of strings), "estimatedDuration" (string, e.g. "2-4 weeks").

Career path: %s
Description: %s
Required skills: %s

Learner's current skills:
%s`

const extractPromptTemplate = `You are a resume analyst. Extract up to 15 skills from the resume text below.

Return ONLY a JSON array. Each element must have exactly these fields:
"name" (string), "category" (one of "technical", "tools", "soft"), "proficiency" (one of "beginner", "intermediate", "advanced", "expert").

Estimate proficiency from context: a skill that is merely mentioned is "beginner"; used in projects is "intermediate"; significant experience is "advanced"; leadership or teaching is "expert".

Resume text: """
%s
"""`

func buildCareerPrompt(user *models.User, skills []models.Skill) string {
	return fmt.Sprintf(careerPromptTemplate, describeProfile(user), describeSkills(skills))
}

func buildRoadmapPrompt(path *models.CareerPath, skills []models.Skill) string {
	return fmt.Sprintf(roadmapPromptTemplate,
		path.Title,
		path.Description,
		strings.Join(path.RequiredSkills, ", "),
		describeSkills(skills),
	)
}

func buildExtractPrompt(text string) string {
	if len(text) > maxResumeChars {
		text = text[:maxResumeChars]
	}
	return fmt.Sprintf(extractPromptTemplate, text)
}

func describeSkills(skills []models.Skill) string {
	if len(skills) == 0 {
		return "(none listed)"
	}
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		lines = append(lines, fmt.Sprintf("- %s (%s, %s)", s.Name, s.Category, s.Proficiency))
	}
	return strings.Join(lines, "\n")
}

func describeProfile(u *models.User) string {
	if u == nil {
		return "(no profile provided)"
	}
	var lines []string
	if u.Education != "" {
		lines = append(lines, "Education: "+u.Education)
	}
	if u.CurrentRole != "" {
		lines = append(lines, "Current role: "+u.CurrentRole)
	}
	if u.ExperienceLevel != "" {
		lines = append(lines, "Experience level: "+u.ExperienceLevel)
	}
	if len(u.Interests) > 0 {
		lines = append(lines, "Interests: "+strings.Join(u.Interests, ", "))
	}
	if len(u.CareerGoals) > 0 {
		lines = append(lines, "Career goals: "+strings.Join(u.CareerGoals, ", "))
	}
	if len(lines) == 0 {
		return "(no profile provided)"
	}
	return strings.Join(lines, "\n")
}
