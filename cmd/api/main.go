package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sergiomvp10/Emunahacademy/api/swagger"
	"github.com/sergiomvp10/Emunahacademy/internal/handler"
	"github.com/sergiomvp10/Emunahacademy/internal/memstore"
	"github.com/sergiomvp10/Emunahacademy/internal/middleware"
	"github.com/sergiomvp10/Emunahacademy/internal/repository"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/cache"
	"github.com/sergiomvp10/Emunahacademy/pkg/config"
	"github.com/sergiomvp10/Emunahacademy/pkg/database"
	"github.com/sergiomvp10/Emunahacademy/pkg/logger"
	corsmiddleware "github.com/sergiomvp10/Emunahacademy/pkg/middleware/cors"
	reqidmiddleware "github.com/sergiomvp10/Emunahacademy/pkg/middleware/requestid"
)

// @title Emunah Academy API
// @version 1.0.0
// @description Backend for the Emunah Academy learning platform
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	validate := validator.New()

	svcs, cleanup, err := buildServices(cfg, validate, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to build services", "error", err)
	}
	defer cleanup()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:         handler.NewAuthHandler(svcs.auth),
		Users:        handler.NewUserHandler(svcs.users),
		Courses:      handler.NewCourseHandler(svcs.courses),
		Lessons:      handler.NewLessonHandler(svcs.lessons),
		Quizzes:      handler.NewQuizHandler(svcs.quizzes),
		Evaluations:  handler.NewEvaluationHandler(svcs.evaluations),
		Calendar:     handler.NewCalendarHandler(svcs.calendar),
		Enrollments:  handler.NewEnrollmentHandler(svcs.enrollments),
		Progress:     handler.NewProgressHandler(svcs.progress),
		Parents:      handler.NewParentHandler(svcs.parents),
		Messages:     handler.NewMessageHandler(svcs.messages),
		Content:      handler.NewContentHandler(svcs.content),
		Applications: handler.NewApplicationHandler(svcs.applications),
		Stats:        handler.NewStatsHandler(svcs.stats),
	}, svcs.auth)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", backendName(cfg))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

type services struct {
	auth         *service.AuthService
	users        *service.UserService
	courses      *service.CourseService
	lessons      *service.LessonService
	quizzes      *service.QuizService
	evaluations  *service.EvaluationService
	calendar     *service.CalendarService
	enrollments  *service.EnrollmentService
	progress     *service.ProgressService
	parents      *service.ParentService
	messages     *service.MessageService
	content      *service.ContentService
	applications *service.ApplicationService
	stats        *service.StatsService
}

// buildServices wires every domain service on top of the configured storage
// backend: Postgres when DATABASE_URL is set, the in-memory store otherwise.
func buildServices(cfg *config.Config, validate *validator.Validate, logr *zap.Logger) (*services, func(), error) {
	cleanup := func() {}

	var cacheSvc *service.CacheService
	if cfg.Stats.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, statistics cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(client)
			cacheSvc = service.NewCacheService(cacheRepo, logr)
			cleanup = func() { cacheRepo.Close() } //nolint:errcheck
		}
	}

	if cfg.Database.URL == "" {
		store := memstore.New()
		svcs := assemble(cfg, validate, logr, cacheSvc, storageAdapters{
			users:        store.Users(),
			courses:      store.Courses(),
			lessons:      store.Lessons(),
			quizzes:      store.Quizzes(),
			evaluations:  store.Evaluations(),
			calendar:     store.Calendar(),
			enrollments:  store.Enrollments(),
			parents:      store.Parents(),
			messages:     store.Messages(),
			content:      store.Content(),
			applications: store.Applications(),
			stats:        store.Stats(),
		})
		return svcs, cleanup, nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	prevCleanup := cleanup
	cleanup = func() {
		prevCleanup()
		db.Close() //nolint:errcheck
	}
	svcs := assemble(cfg, validate, logr, cacheSvc, storageAdapters{
		users:        repository.NewUserRepository(db),
		courses:      repository.NewCourseRepository(db),
		lessons:      repository.NewLessonRepository(db),
		quizzes:      repository.NewQuizRepository(db),
		evaluations:  repository.NewEvaluationRepository(db),
		calendar:     repository.NewCalendarRepository(db),
		enrollments:  repository.NewEnrollmentRepository(db),
		parents:      repository.NewParentRepository(db),
		messages:     repository.NewMessageRepository(db),
		content:      repository.NewContentRepository(db),
		applications: repository.NewApplicationRepository(db),
		stats:        repository.NewStatsRepository(db),
	})
	return svcs, cleanup, nil
}

// storageAdapters carries one storage implementation per entity, either the
// sqlx repositories or the memstore accessors.
type storageAdapters struct {
	users        service.UserStorage
	courses      service.CourseStorage
	lessons      service.LessonStorage
	quizzes      service.QuizStorage
	evaluations  service.EvaluationStorage
	calendar     service.CalendarStorage
	enrollments  service.EnrollmentStorage
	parents      service.ParentStorage
	messages     service.MessageStorage
	content      service.ContentStorage
	applications service.ApplicationStorage
	stats        service.StatsStorage
}

func assemble(cfg *config.Config, validate *validator.Validate, logr *zap.Logger, cacheSvc *service.CacheService, st storageAdapters) *services {
	progress := service.NewProgressService(st.enrollments, st.courses, st.lessons, st.quizzes, st.evaluations, st.users, logr)
	return &services{
		auth:         service.NewAuthService(st.users, cfg.JWT, validate, logr),
		users:        service.NewUserService(st.users, logr),
		courses:      service.NewCourseService(st.courses, st.users, validate, logr),
		lessons:      service.NewLessonService(st.lessons, st.courses, st.users, validate, logr),
		quizzes:      service.NewQuizService(st.quizzes, st.lessons, st.users, validate, logr),
		evaluations:  service.NewEvaluationService(st.evaluations, st.courses, st.users, validate, logr),
		calendar:     service.NewCalendarService(st.calendar, st.users, validate, logr),
		enrollments:  service.NewEnrollmentService(st.enrollments, st.courses, st.users, validate, logr),
		progress:     progress,
		parents:      service.NewParentService(st.parents, st.users, progress, validate, logr),
		messages:     service.NewMessageService(st.messages, st.users, validate, logr),
		content:      service.NewContentService(st.content, validate, logr),
		applications: service.NewApplicationService(st.applications, st.users, validate, logr),
		stats:        service.NewStatsService(st.stats, cacheSvc, cfg.Stats.CacheTTL, logr),
	}
}

func backendName(cfg *config.Config) string {
	if cfg.Database.URL == "" {
		return "memory"
	}
	return "postgres"
}
