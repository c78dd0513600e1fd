package models

import "time"

// Skill categories and proficiency levels accepted from clients and from the
// extraction engine. Anything outside these sets is rejected or defaulted.
const (
	CategoryTechnical = "technical"
	CategoryTools     = "tools"
	CategorySoft      = "soft"

	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryTechnical, CategoryTools, CategorySoft:
		return true
	}
	return false
}

func ValidProficiency(p string) bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

type Skill struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Name        string `gorm:"column:name;type:text" json:"name"`
	Category    string `gorm:"column:category;type:text" json:"category"`
	Proficiency string `gorm:"column:proficiency;type:text" json:"proficiency"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Skill) TableName() string { return "skills" }
