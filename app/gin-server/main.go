package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/pathwise/config"
	"github.com/yoockh/pathwise/internal/api/handlers"
	"github.com/yoockh/pathwise/internal/api/routes"
	"github.com/yoockh/pathwise/internal/cache"
	"github.com/yoockh/pathwise/internal/database"
	"github.com/yoockh/pathwise/internal/extractor"
	"github.com/yoockh/pathwise/internal/logger"
	"github.com/yoockh/pathwise/internal/providers/llm"
	mongorepo "github.com/yoockh/pathwise/internal/repositories/mongo"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("postgres connection failed")
	}
	if err := config.MigratePostgres(); err != nil {
		log.WithError(err).Fatal("postgres migration failed")
	}
	if err := database.SeedCatalog(config.PostgresDB); err != nil {
		log.WithError(err).Fatal("catalog seeding failed")
	}

	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}

	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("mongo connection failed")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Fatal("mongo index creation failed")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// the LLM provider is optional: without it every generation uses the
	// deterministic fallbacks
	var provider llm.Provider
	if projectID := os.Getenv("GCP_PROJECT_ID"); projectID != "" {
		gem, err := llm.NewVertexGemini(ctx, projectID, os.Getenv("GCP_LOCATION"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.WithError(err).Warn("vertex gemini unavailable, falling back to built-in recommendations")
		} else {
			provider = gem
			defer gem.Close()
		}
	} else {
		log.Warn("GCP_PROJECT_ID not set, using built-in recommendations")
	}

	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.WithError(err).Fatal("gcs client failed")
		}
		uploader = up
		defer up.Close()
	} else {
		log.Warn("GCS_BUCKET not set, resume upload is disabled")
	}

	db := config.PostgresDB
	users := pgrepo.NewUserRepo(db)
	skills := pgrepo.NewSkillRepo(db)
	careerPaths := pgrepo.NewCareerPathRepo(db)
	roadmaps := pgrepo.NewRoadmapRepo(db)
	catalog := pgrepo.NewCatalogRepo(db)
	saved := pgrepo.NewSavedRepo(db)
	resumes := pgrepo.NewResumeRepo(db)
	genLogs := mongorepo.NewGenerationLogRepo(config.MongoDatabase())

	statsCache := cache.NewRedisCache(config.RedisClient)

	engine := services.NewRecommendationService(provider, genLogs, log)
	authSvc := services.NewAuthService(users, jwtSecret)
	profileSvc := services.NewProfileService(users)
	skillSvc := services.NewSkillService(skills, statsCache)
	careerSvc := services.NewCareerService(users, skills, careerPaths, roadmaps, engine, statsCache)
	progressSvc := services.NewProgressService(skills, careerPaths, roadmaps, saved, statsCache)
	librarySvc := services.NewLibraryService(catalog, saved, statsCache)
	resumeSvc := services.NewResumeService(resumes, skillSvc, engine, uploader, extractor.NewPlainText(), log)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Log:       log,
		Auth:      handlers.NewAuthHandler(authSvc),
		Profile:   handlers.NewProfileHandler(profileSvc),
		Skills:    handlers.NewSkillHandler(skillSvc),
		Resumes:   handlers.NewResumeHandler(resumeSvc),
		Careers:   handlers.NewCareerHandler(careerSvc),
		Roadmaps:  handlers.NewRoadmapHandler(careerSvc, progressSvc),
		Library:   handlers.NewLibraryHandler(librarySvc, progressSvc),
		Dashboard: handlers.NewDashboardHandler(progressSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{"port": port}).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
