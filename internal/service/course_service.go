package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindDetailByID(ctx context.Context, id int64) (*models.CourseDetail, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id int64, req models.CourseRequest) error
	Publish(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type courseUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// CourseService handles course use-cases.
type CourseService struct {
	courses   courseRepository
	users     courseUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(courses courseRepository, users courseUserRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, users: users, validator: validate, logger: logger}
}

// List returns courses with teacher names, optionally filtered.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error) {
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns one course with the teacher's name inlined.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.CourseDetail, error) {
	course, err := s.courses.FindDetailByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}

// Create registers a new unpublished course owned by the given teacher.
// The owner must exist and hold a course-owning role.
func (s *CourseService) Create(ctx context.Context, teacherID int64, req models.CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	teacher, err := s.users.FindByID(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if !teacher.Role.CanOwnCourse() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "role may not own courses")
	}
	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		GradeLevel:   req.GradeLevel,
		TeacherID:    teacherID,
		Published:    false,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.logger.Info("course created", zap.Int64("course_id", course.ID), zap.Int64("teacher_id", teacherID))
	return course, nil
}

// Update replaces the editable fields of a course.
func (s *CourseService) Update(ctx context.Context, id int64, req models.CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if _, err := s.findCourse(ctx, id); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, id, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return s.findCourse(ctx, id)
}

// Publish makes a course visible to students. Repeat calls are no-ops.
func (s *CourseService) Publish(ctx context.Context, id int64) (*models.Course, error) {
	if _, err := s.findCourse(ctx, id); err != nil {
		return nil, err
	}
	if err := s.courses.Publish(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to publish course")
	}
	return s.findCourse(ctx, id)
}

// Delete removes a course and everything hanging off it.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.findCourse(ctx, id); err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.logger.Info("course deleted", zap.Int64("course_id", id))
	return nil
}

func (s *CourseService) findCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}
