package models

import (
	"time"

	"github.com/lib/pq"
)

// CareerPath is one generated career suggestion. A user has at most one row
// with is_selected = true; every generation run replaces the whole set.
type CareerPath struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id"`

	Title           string         `gorm:"column:title;type:text" json:"title"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	MatchPercentage int            `gorm:"column:match_percentage;type:integer" json:"match_percentage"`
	MatchReasons    pq.StringArray `gorm:"column:match_reasons;type:text[]" json:"match_reasons"`
	RequiredSkills  pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`
	SalaryRange     string         `gorm:"column:salary_range;type:text" json:"salary_range,omitempty"`
	DemandLevel     string         `gorm:"column:demand_level;type:text" json:"demand_level,omitempty"`

	IsSelected bool `gorm:"column:is_selected;type:boolean" json:"is_selected"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (CareerPath) TableName() string { return "career_paths" }
