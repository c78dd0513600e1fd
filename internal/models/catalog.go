package models

import "github.com/lib/pq"

// Course and Project are seeded catalog entities, not user-owned.

type Course struct {
	ID        string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title     string         `gorm:"column:title;type:text;uniqueIndex" json:"title"`
	Provider  string         `gorm:"column:provider;type:text" json:"provider"`
	URL       string         `gorm:"column:url;type:text" json:"url"`
	Level     string         `gorm:"column:level;type:text" json:"level"`
	SkillTags pq.StringArray `gorm:"column:skill_tags;type:text[]" json:"skill_tags"`
}

func (Course) TableName() string { return "courses" }

type Project struct {
	ID          string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"column:title;type:text;uniqueIndex" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Difficulty  string         `gorm:"column:difficulty;type:text" json:"difficulty"`
	SkillTags   pq.StringArray `gorm:"column:skill_tags;type:text[]" json:"skill_tags"`
}

func (Project) TableName() string { return "projects" }
