package models

import "time"

// SavedCourse pairs a user with a catalog course. The composite unique index
// makes duplicate saves a no-op at the storage layer.
type SavedCourse struct {
	ID       string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID   string    `gorm:"column:user_id;type:uuid;uniqueIndex:uniq_user_course" json:"user_id"`
	CourseID string    `gorm:"column:course_id;type:uuid;uniqueIndex:uniq_user_course" json:"course_id"`
	SavedAt  time.Time `gorm:"column:saved_at;type:timestamptz" json:"saved_at"`
}

func (SavedCourse) TableName() string { return "saved_courses" }

type SavedProject struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;uniqueIndex:uniq_user_project" json:"user_id"`
	ProjectID string    `gorm:"column:project_id;type:uuid;uniqueIndex:uniq_user_project" json:"project_id"`
	SavedAt   time.Time `gorm:"column:saved_at;type:timestamptz" json:"saved_at"`

	IsCompleted bool `gorm:"column:is_completed;type:boolean" json:"is_completed"`
}

func (SavedProject) TableName() string { return "saved_projects" }
