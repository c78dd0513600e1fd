package config

import (
	"errors"
	"os"
	"time"

	"github.com/yoockh/pathwise/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PostgresDB *gorm.DB

func InitPostgres() error {
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		return errors.New("POSTGRES_URI environment variable is not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection Pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	PostgresDB = db
	return nil
}

// MigratePostgres creates/updates the schema for every persisted row type.
func MigratePostgres() error {
	if PostgresDB == nil {
		return errors.New("PostgresDB is nil; call InitPostgres() first")
	}
	return PostgresDB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.CareerPath{},
		&models.Roadmap{},
		&models.RoadmapStep{},
		&models.Course{},
		&models.Project{},
		&models.SavedCourse{},
		&models.SavedProject{},
		&models.Resume{},
	)
}
