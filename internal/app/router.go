package app

import (
	"studyquest_backend/internal/config"
	"studyquest_backend/internal/middleware"
	"studyquest_backend/internal/model"
	"studyquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.POST("/onboarding", c.auth.CompleteOnboarding)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/quests", c.dashboard.GetQuests)
		authGroup.GET("/leaderboard", c.leaderboard.GetLeaderboard)

		authGroup.GET("/subjects", c.subject.ListSubjects)
		authGroup.GET("/subjects/:id", c.subject.GetSubjectPath)

		authGroup.GET("/lessons/:id", c.lesson.GetLesson)
		authGroup.POST("/lessons/:id/check", c.lesson.CheckAnswer)
		authGroup.POST("/lessons/:id/submit", c.lesson.SubmitLesson)

		teacher := authGroup.Group("/teacher")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.GET("/students", c.teacher.GetRoster)
			teacher.POST("/students", c.teacher.LinkStudent)
		}
	}
}
