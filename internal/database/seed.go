package database

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/yoockh/pathwise/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog inserts the built-in course and project catalog. Titles are
// unique, so rerunning on boot is a no-op for rows that already exist.
func SeedCatalog(db *gorm.DB) error {
	courses := []models.Course{
		{
			Title:     "The Complete Web Development Bootcamp",
			Provider:  "Udemy",
			URL:       "https://www.udemy.com/course/the-complete-web-development-bootcamp/",
			Level:     "beginner",
			SkillTags: pq.StringArray{"html", "css", "javascript", "node"},
		},
		{
			Title:     "JavaScript: The Hard Parts",
			Provider:  "Frontend Masters",
			URL:       "https://frontendmasters.com/courses/javascript-hard-parts-v2/",
			Level:     "intermediate",
			SkillTags: pq.StringArray{"javascript", "closures", "async"},
		},
		{
			Title:     "React - The Complete Guide",
			Provider:  "Udemy",
			URL:       "https://www.udemy.com/course/react-the-complete-guide-incl-redux/",
			Level:     "intermediate",
			SkillTags: pq.StringArray{"react", "javascript", "redux"},
		},
		{
			Title:     "Python for Everybody",
			Provider:  "Coursera",
			URL:       "https://www.coursera.org/specializations/python",
			Level:     "beginner",
			SkillTags: pq.StringArray{"python", "data"},
		},
		{
			Title:     "SQL for Data Analysis",
			Provider:  "Mode",
			URL:       "https://mode.com/sql-tutorial/",
			Level:     "beginner",
			SkillTags: pq.StringArray{"sql", "analytics"},
		},
		{
			Title:     "Data Analysis with Pandas",
			Provider:  "DataCamp",
			URL:       "https://www.datacamp.com/courses/data-manipulation-with-pandas",
			Level:     "intermediate",
			SkillTags: pq.StringArray{"python", "pandas", "data"},
		},
		{
			Title:     "Grokking Algorithms",
			Provider:  "Manning",
			URL:       "https://www.manning.com/books/grokking-algorithms",
			Level:     "beginner",
			SkillTags: pq.StringArray{"algorithms", "problem solving"},
		},
		{
			Title:     "Docker and Kubernetes: The Complete Guide",
			Provider:  "Udemy",
			URL:       "https://www.udemy.com/course/docker-and-kubernetes-the-complete-guide/",
			Level:     "advanced",
			SkillTags: pq.StringArray{"docker", "kubernetes", "devops"},
		},
	}

	projects := []models.Project{
		{
			Title:       "Personal Portfolio Website",
			Description: "Design and ship a responsive portfolio site with a contact form and deployment pipeline.",
			Difficulty:  "beginner",
			SkillTags:   pq.StringArray{"html", "css", "javascript"},
		},
		{
			Title:       "Task Manager REST API",
			Description: "Build a CRUD API with authentication, pagination and integration tests.",
			Difficulty:  "intermediate",
			SkillTags:   pq.StringArray{"node", "api", "postgres"},
		},
		{
			Title:       "Realtime Chat Application",
			Description: "A chat app with rooms, presence and message history.",
			Difficulty:  "advanced",
			SkillTags:   pq.StringArray{"websockets", "react", "redis"},
		},
		{
			Title:       "Sales Data Dashboard",
			Description: "Clean a public sales dataset and build an interactive dashboard with charts and filters.",
			Difficulty:  "intermediate",
			SkillTags:   pq.StringArray{"python", "pandas", "visualization"},
		},
		{
			Title:       "A/B Test Analyzer",
			Description: "Analyze an experiment dataset, compute significance and write up the findings.",
			Difficulty:  "advanced",
			SkillTags:   pq.StringArray{"statistics", "python", "sql"},
		},
		{
			Title:       "URL Shortener Service",
			Description: "A link shortener with custom aliases, hit counting and expiry.",
			Difficulty:  "beginner",
			SkillTags:   pq.StringArray{"api", "database", "caching"},
		},
	}

	for i := range courses {
		courses[i].ID = uuid.NewString()
	}
	for i := range projects {
		projects[i].ID = uuid.NewString()
	}

	onTitleConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "title"}},
		DoNothing: true,
	}

	if err := db.Clauses(onTitleConflict).Create(&courses).Error; err != nil {
		return err
	}
	return db.Clauses(onTitleConflict).Create(&projects).Error
}
