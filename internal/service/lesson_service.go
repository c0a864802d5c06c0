package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type lessonRepository interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error)
	FindByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, id int64, title string, kind models.LessonKind, content string, order int) error
	Delete(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, studentID, lessonID int64) error
}

type lessonCourseRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

type lessonUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// LessonService handles lesson use-cases.
type LessonService struct {
	lessons   lessonRepository
	courses   lessonCourseRepository
	users     lessonUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLessonService constructs the lesson service.
func NewLessonService(lessons lessonRepository, courses lessonCourseRepository, users lessonUserRepository, validate *validator.Validate, logger *zap.Logger) *LessonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{lessons: lessons, courses: courses, users: users, validator: validate, logger: logger}
}

// ListByCourse returns the course's lessons in order-index order.
func (s *LessonService) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lessons")
	}
	return lessons, nil
}

// Get returns one lesson by id.
func (s *LessonService) Get(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lesson")
	}
	return lesson, nil
}

// Create adds a lesson to an existing course.
func (s *LessonService) Create(ctx context.Context, req models.LessonRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	if !req.Kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown lesson type")
	}
	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	lesson := &models.Lesson{
		CourseID: req.CourseID,
		Title:    req.Title,
		Kind:     req.Kind,
		Content:  req.Content,
		Order:    req.Order,
	}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create lesson")
	}
	return lesson, nil
}

// Update replaces the editable fields of a lesson.
func (s *LessonService) Update(ctx context.Context, id int64, title string, kind models.LessonKind, content string, order int) (*models.Lesson, error) {
	if !kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown lesson type")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.lessons.Update(ctx, id, title, kind, content, order); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update lesson")
	}
	return s.Get(ctx, id)
}

// Delete removes a lesson and its completion markers and quiz results.
func (s *LessonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.lessons.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete lesson")
	}
	return nil
}

// Complete records the student's completion marker. Completing twice leaves
// a single marker.
func (s *LessonService) Complete(ctx context.Context, lessonID, studentID int64) error {
	if _, err := s.Get(ctx, lessonID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if err := s.lessons.MarkCompleted(ctx, studentID, lessonID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark lesson completed")
	}
	return nil
}
