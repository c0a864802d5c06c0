package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type evaluationRepository interface {
	List(ctx context.Context, courseID int64) ([]models.Evaluation, error)
	FindByID(ctx context.Context, id int64) (*models.Evaluation, error)
	Create(ctx context.Context, eval *models.Evaluation) error
	CreateSubmission(ctx context.Context, sub *models.EvaluationSubmission) error
	FindSubmissionByID(ctx context.Context, id int64) (*models.EvaluationSubmission, error)
	ListSubmissions(ctx context.Context, evaluationID int64) ([]models.SubmissionDetail, error)
	Grade(ctx context.Context, id int64, score float64, feedback string, gradedAt time.Time) error
}

type evaluationCourseRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

type evaluationUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// EvaluationService handles graded assignment use-cases.
type EvaluationService struct {
	evaluations evaluationRepository
	courses     evaluationCourseRepository
	users       evaluationUserRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEvaluationService constructs the evaluation service.
func NewEvaluationService(evaluations evaluationRepository, courses evaluationCourseRepository, users evaluationUserRepository, validate *validator.Validate, logger *zap.Logger) *EvaluationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{evaluations: evaluations, courses: courses, users: users, validator: validate, logger: logger}
}

// List returns evaluations, optionally restricted to one course.
func (s *EvaluationService) List(ctx context.Context, courseID int64) ([]models.Evaluation, error) {
	evals, err := s.evaluations.List(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list evaluations")
	}
	return evals, nil
}

// Get returns one evaluation by id.
func (s *EvaluationService) Get(ctx context.Context, id int64) (*models.Evaluation, error) {
	eval, err := s.evaluations.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "evaluation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load evaluation")
	}
	return eval, nil
}

// Create registers a new evaluation on an existing course.
func (s *EvaluationService) Create(ctx context.Context, req models.EvaluationRequest) (*models.Evaluation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid evaluation payload")
	}
	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}
	eval := &models.Evaluation{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
		DueDate:     req.DueDate,
		MaxScore:    maxScore,
	}
	if err := s.evaluations.Create(ctx, eval); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create evaluation")
	}
	return eval, nil
}

// Submit hands in a student's answer. Score, feedback and graded timestamp
// stay null until a grading action.
func (s *EvaluationService) Submit(ctx context.Context, studentID int64, req models.SubmitEvaluationRequest) (*models.EvaluationSubmission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if _, err := s.Get(ctx, req.EvaluationID); err != nil {
		return nil, err
	}
	sub := &models.EvaluationSubmission{
		EvaluationID: req.EvaluationID,
		StudentID:    studentID,
		Content:      req.Content,
	}
	if err := s.evaluations.CreateSubmission(ctx, sub); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create submission")
	}
	return sub, nil
}

// Submissions returns an evaluation's submissions with student names.
func (s *EvaluationService) Submissions(ctx context.Context, evaluationID int64) ([]models.SubmissionDetail, error) {
	if _, err := s.Get(ctx, evaluationID); err != nil {
		return nil, err
	}
	subs, err := s.evaluations.ListSubmissions(ctx, evaluationID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return subs, nil
}

// Grade sets score, feedback and the grading timestamp in one update.
// Re-grading replaces the previous values.
func (s *EvaluationService) Grade(ctx context.Context, req models.GradeRequest) (*models.EvaluationSubmission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if _, err := s.evaluations.FindSubmissionByID(ctx, req.SubmissionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "submission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	gradedAt := time.Now().UTC()
	if err := s.evaluations.Grade(ctx, req.SubmissionID, req.Score, req.Feedback, gradedAt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to grade submission")
	}
	sub, err := s.evaluations.FindSubmissionByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload submission")
	}
	s.logger.Info("submission graded", zap.Int64("submission_id", req.SubmissionID), zap.Float64("score", req.Score))
	return sub, nil
}
