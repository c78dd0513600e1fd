package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/pathwise/internal/api/handlers"
	"github.com/yoockh/pathwise/internal/api/middleware"
)

type Deps struct {
	Log       *logrus.Logger
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Skills    *handlers.SkillHandler
	Resumes   *handlers.ResumeHandler
	Careers   *handlers.CareerHandler
	Roadmaps  *handlers.RoadmapHandler
	Library   *handlers.LibraryHandler
	Dashboard *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestLogger(d.Log))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	authed := r.Group("/")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/profile/me", d.Profile.Me)
		authed.PUT("/profile/update", d.Profile.Update)

		authed.GET("/skills", d.Skills.List)
		authed.POST("/skills", d.Skills.Add)
		authed.DELETE("/skills/:id", d.Skills.Remove)
		authed.POST("/skills/extract", d.Resumes.Extract)

		authed.POST("/careers/generate", d.Careers.Generate)
		authed.GET("/careers", d.Careers.List)
		authed.POST("/careers/:id/select", d.Careers.Select)

		authed.GET("/roadmap", d.Roadmaps.Current)
		authed.PATCH("/roadmap-steps/:id", d.Roadmaps.ToggleStep)

		authed.GET("/courses", d.Library.ListCourses)
		authed.POST("/courses/:id/save", d.Library.SaveCourse)
		authed.GET("/saved-courses", d.Library.ListSavedCourses)
		authed.DELETE("/saved-courses/:id", d.Library.UnsaveCourse)

		authed.GET("/projects", d.Library.ListProjects)
		authed.POST("/projects/:id/save", d.Library.SaveProject)
		authed.GET("/saved-projects", d.Library.ListSavedProjects)
		authed.PATCH("/saved-projects/:id", d.Library.ToggleProject)

		authed.GET("/dashboard/stats", d.Dashboard.Stats)
	}
}
