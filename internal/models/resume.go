package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resume is an immutable audit row for an upload: the stored object key plus
// the raw skill payload the engine returned. Nothing reads it back.
type Resume struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	FileName string `gorm:"column:file_name;type:text" json:"file_name"`
	FilePath string `gorm:"column:file_path;type:text" json:"file_path"`

	ExtractedPayload datatypes.JSON `gorm:"column:extracted_payload;type:jsonb" json:"extracted_payload"`

	UploadAt time.Time `gorm:"column:upload_at;type:timestamptz" json:"upload_at"`
}

func (Resume) TableName() string { return "resumes" }
