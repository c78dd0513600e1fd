package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`
	FullName     string `gorm:"column:full_name;type:text" json:"full_name"`

	Education       string `gorm:"column:education;type:text" json:"education"`
	CurrentRole     string `gorm:"column:current_role;type:text" json:"current_role"`
	ExperienceLevel string `gorm:"column:experience_level;type:text" json:"experience_level"`

	Interests   pq.StringArray `gorm:"column:interests;type:text[]" json:"interests"`
	CareerGoals pq.StringArray `gorm:"column:career_goals;type:text[]" json:"career_goals"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string { return "users" }
