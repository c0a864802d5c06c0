package service

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type quizRepository interface {
	RecordSubmission(ctx context.Context, result *models.QuizResult) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.QuizResult, error)
}

type quizLessonRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Lesson, error)
}

type quizUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// QuizService grades quiz submissions and exposes results.
type QuizService struct {
	quizzes   quizRepository
	lessons   quizLessonRepository
	users     quizUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewQuizService constructs the quiz service.
func NewQuizService(quizzes quizRepository, lessons quizLessonRepository, users quizUserRepository, validate *validator.Validate, logger *zap.Logger) *QuizService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{quizzes: quizzes, lessons: lessons, users: users, validator: validate, logger: logger}
}

// Submit grades an attempt against the lesson's question list and records
// the result together with the lesson completion marker. Answers beyond the
// question list are ignored; missing answers count as wrong.
func (s *QuizService) Submit(ctx context.Context, studentID int64, req models.QuizSubmission) (*models.QuizResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid quiz payload")
	}
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	lesson, err := s.lessons.FindByID(ctx, req.LessonID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lesson")
	}
	if lesson.Kind != models.LessonQuiz {
		return nil, appErrors.Clone(appErrors.ErrValidation, "lesson is not a quiz")
	}
	var questions []models.QuizQuestion
	if lesson.Content != "" {
		if err := json.Unmarshal([]byte(lesson.Content), &questions); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "malformed quiz content")
		}
	}

	correct := 0
	for i, answer := range req.Answers {
		if i < len(questions) && answer == questions[i].CorrectAnswer {
			correct++
		}
	}
	score := 0.0
	if len(questions) > 0 {
		score = float64(correct) / float64(len(questions)) * 100
	}

	result := &models.QuizResult{
		LessonID:       req.LessonID,
		StudentID:      studentID,
		Score:          score,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
	}
	if err := s.quizzes.RecordSubmission(ctx, result); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record quiz result")
	}
	s.logger.Info("quiz graded",
		zap.Int64("lesson_id", req.LessonID),
		zap.Int64("student_id", studentID),
		zap.Float64("score", score))
	return result, nil
}

// ResultsByStudent returns every recorded attempt for the student.
func (s *QuizService) ResultsByStudent(ctx context.Context, studentID int64) ([]models.QuizResult, error) {
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	results, err := s.quizzes.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list quiz results")
	}
	return results, nil
}
