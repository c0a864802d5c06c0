package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
	"github.com/sergiomvp10/Emunahacademy/pkg/export"
)

type progressEnrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error)
}

type progressCourseRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

type progressLessonRepository interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error)
	CountCompleted(ctx context.Context, studentID int64, lessonIDs []int64) (int, error)
}

type progressQuizRepository interface {
	ListByStudentAndLessons(ctx context.Context, studentID int64, lessonIDs []int64) ([]models.QuizResult, error)
}

type progressEvaluationRepository interface {
	List(ctx context.Context, courseID int64) ([]models.Evaluation, error)
	CountSubmissions(ctx context.Context, studentID int64, evaluationIDs []int64) (int, error)
}

type progressUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// ProgressService aggregates per-course progress for a student.
type ProgressService struct {
	enrollments progressEnrollmentRepository
	courses     progressCourseRepository
	lessons     progressLessonRepository
	quizzes     progressQuizRepository
	evaluations progressEvaluationRepository
	users       progressUserRepository
	logger      *zap.Logger
}

// NewProgressService constructs the progress service.
func NewProgressService(
	enrollments progressEnrollmentRepository,
	courses progressCourseRepository,
	lessons progressLessonRepository,
	quizzes progressQuizRepository,
	evaluations progressEvaluationRepository,
	users progressUserRepository,
	logger *zap.Logger,
) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		enrollments: enrollments,
		courses:     courses,
		lessons:     lessons,
		quizzes:     quizzes,
		evaluations: evaluations,
		users:       users,
		logger:      logger,
	}
}

// ForStudent returns one progress row per enrolled course, in enrollment
// order. The quiz average stays nil until the student has at least one
// recorded result in that course.
func (s *ProgressService) ForStudent(ctx context.Context, studentID int64) ([]models.StudentProgress, error) {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	enrollments, err := s.enrollments.List(ctx, models.EnrollmentFilter{StudentID: studentID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	progress := make([]models.StudentProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := s.courses.FindByID(ctx, enrollment.CourseID)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
		}
		row, err := s.courseProgress(ctx, student, course)
		if err != nil {
			return nil, err
		}
		progress = append(progress, *row)
	}
	return progress, nil
}

func (s *ProgressService) courseProgress(ctx context.Context, student *models.User, course *models.Course) (*models.StudentProgress, error) {
	lessons, err := s.lessons.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lessons")
	}
	lessonIDs := make([]int64, 0, len(lessons))
	quizLessonIDs := make([]int64, 0)
	for _, lesson := range lessons {
		lessonIDs = append(lessonIDs, lesson.ID)
		if lesson.Kind == models.LessonQuiz {
			quizLessonIDs = append(quizLessonIDs, lesson.ID)
		}
	}

	completed, err := s.lessons.CountCompleted(ctx, student.ID, lessonIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count completions")
	}

	var average *float64
	results, err := s.quizzes.ListByStudentAndLessons(ctx, student.ID, quizLessonIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list quiz results")
	}
	if len(results) > 0 {
		sum := 0.0
		for _, res := range results {
			sum += res.Score
		}
		avg := sum / float64(len(results))
		average = &avg
	}

	evaluations, err := s.evaluations.List(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list evaluations")
	}
	evalIDs := make([]int64, 0, len(evaluations))
	for _, ev := range evaluations {
		evalIDs = append(evalIDs, ev.ID)
	}
	submitted, err := s.evaluations.CountSubmissions(ctx, student.ID, evalIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count submissions")
	}

	return &models.StudentProgress{
		StudentID:            student.ID,
		StudentName:          student.Name,
		CourseID:             course.ID,
		CourseTitle:          course.Title,
		CompletedLessons:     completed,
		TotalLessons:         len(lessons),
		AverageQuizScore:     average,
		EvaluationsCompleted: submitted,
		TotalEvaluations:     len(evaluations),
	}, nil
}

// Export renders the student's progress as a downloadable table in the
// requested format, csv or pdf.
func (s *ProgressService) Export(ctx context.Context, studentID int64, format string) ([]byte, string, error) {
	progress, err := s.ForStudent(ctx, studentID)
	if err != nil {
		return nil, "", err
	}
	table := export.Table{
		Headers: []string{"Course", "Lessons Completed", "Total Lessons", "Avg Quiz Score", "Evaluations Submitted", "Total Evaluations"},
	}
	for _, row := range progress {
		avg := "-"
		if row.AverageQuizScore != nil {
			avg = fmt.Sprintf("%.1f", *row.AverageQuizScore)
		}
		table.Rows = append(table.Rows, []string{
			row.CourseTitle,
			fmt.Sprintf("%d", row.CompletedLessons),
			fmt.Sprintf("%d", row.TotalLessons),
			avg,
			fmt.Sprintf("%d", row.EvaluationsCompleted),
			fmt.Sprintf("%d", row.TotalEvaluations),
		})
	}
	title := "Progress Report"
	if len(progress) > 0 {
		title = fmt.Sprintf("Progress Report - %s", progress[0].StudentName)
	}

	switch format {
	case "csv", "":
		data, err := export.NewCSVExporter().Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := export.NewPDFExporter().Render(table, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
