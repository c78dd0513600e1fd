package models

import (
	"time"

	"github.com/lib/pq"
)

// Roadmap phases, coarse difficulty buckets. Steps keep their generated
// order via OrderIndex; phase is informational, not a sort key.
const (
	PhaseBeginner     = "Beginner"
	PhaseIntermediate = "Intermediate"
	PhaseAdvanced     = "Advanced"
)

type Roadmap struct {
	ID           string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID       string  `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	CareerPathID *string `gorm:"column:career_path_id;type:uuid" json:"career_path_id,omitempty"`

	Title       string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Roadmap) TableName() string { return "roadmaps" }

type RoadmapStep struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RoadmapID string `gorm:"column:roadmap_id;type:uuid;index" json:"roadmap_id"`

	Phase        string         `gorm:"column:phase;type:text" json:"phase"`
	Title        string         `gorm:"column:title;type:text" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	SkillsGained pq.StringArray `gorm:"column:skills_gained;type:text[]" json:"skills_gained"`
	Duration     string         `gorm:"column:duration;type:text" json:"duration,omitempty"`

	OrderIndex  int  `gorm:"column:order_index;type:integer" json:"order_index"`
	IsCompleted bool `gorm:"column:is_completed;type:boolean" json:"is_completed"`
}

func (RoadmapStep) TableName() string { return "roadmap_steps" }
