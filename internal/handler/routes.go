package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/middleware"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Courses      *CourseHandler
	Lessons      *LessonHandler
	Quizzes      *QuizHandler
	Evaluations  *EvaluationHandler
	Calendar     *CalendarHandler
	Enrollments  *EnrollmentHandler
	Progress     *ProgressHandler
	Parents      *ParentHandler
	Messages     *MessageHandler
	Content      *ContentHandler
	Applications *ApplicationHandler
	Stats        *StatsHandler
}

// RegisterRoutes mounts the API under the given prefix. The only route
// behind the JWT middleware is the profile endpoint; everything else trusts
// caller-supplied ids, matching the platform's collaborator boundary.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth *service.AuthService) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group(prefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.JWT(auth), h.Auth.Me)
	}

	users := api.Group("/users")
	{
		users.GET("", h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id/grade", h.Users.UpdateGrade)
		users.DELETE("/:id", h.Users.Delete)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.GET("/:id", h.Courses.Get)
		courses.POST("", h.Courses.Create)
		courses.PUT("/:id", h.Courses.Update)
		courses.POST("/:id/publish", h.Courses.Publish)
		courses.DELETE("/:id", h.Courses.Delete)
		courses.GET("/:id/lessons", h.Lessons.ListByCourse)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("/:id", h.Lessons.Get)
		lessons.POST("", h.Lessons.Create)
		lessons.PUT("/:id", h.Lessons.Update)
		lessons.DELETE("/:id", h.Lessons.Delete)
		lessons.POST("/:id/complete", h.Lessons.Complete)
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.POST("/submit", h.Quizzes.Submit)
		quizzes.GET("/results/:student_id", h.Quizzes.Results)
	}

	evaluations := api.Group("/evaluations")
	{
		evaluations.GET("", h.Evaluations.List)
		evaluations.POST("", h.Evaluations.Create)
		evaluations.POST("/submit", h.Evaluations.Submit)
		evaluations.POST("/grade", h.Evaluations.Grade)
		evaluations.GET("/:id", h.Evaluations.Get)
		evaluations.GET("/:id/submissions", h.Evaluations.Submissions)
	}

	calendar := api.Group("/calendar")
	{
		calendar.GET("", h.Calendar.List)
		calendar.POST("", h.Calendar.Create)
		calendar.DELETE("/:id", h.Calendar.Delete)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", h.Enrollments.List)
		enrollments.POST("", h.Enrollments.Create)
		enrollments.DELETE("/:id", h.Enrollments.Delete)
	}

	progress := api.Group("/progress")
	{
		progress.GET("/:student_id", h.Progress.ForStudent)
		progress.GET("/:student_id/export", h.Progress.Export)
	}

	parents := api.Group("/parents")
	{
		parents.POST("/link", h.Parents.Link)
		parents.GET("/:id/children", h.Parents.Children)
	}

	messages := api.Group("/messages")
	{
		messages.POST("", h.Messages.Send)
		messages.GET("/contacts", h.Messages.Contacts)
		messages.GET("/conversations", h.Messages.Conversations)
		messages.POST("/read-all", h.Messages.MarkAllRead)
		messages.GET("/:id", h.Messages.Thread)
		messages.POST("/:id/read", h.Messages.MarkRead)
	}

	content := api.Group("/site-content")
	{
		content.GET("", h.Content.All)
		content.GET("/:section", h.Content.Get)
		content.PUT("/:section", h.Content.Update)
	}

	applications := api.Group("/applications")
	{
		applications.GET("", h.Applications.List)
		applications.GET("/:id", h.Applications.Get)
		applications.POST("", h.Applications.Create)
		applications.PUT("/:id/status", h.Applications.Review)
		applications.DELETE("/:id", h.Applications.Delete)
	}

	api.GET("/statistics", h.Stats.Snapshot)
}
