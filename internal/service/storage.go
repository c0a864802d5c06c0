package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// The interfaces below name the full method set each storage backend
// provides per entity. Both the sqlx repositories and the in-memory store
// satisfy them; services themselves depend on narrower unexported views.

// UserStorage is the complete user persistence surface.
type UserStorage interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateGrade(ctx context.Context, id int64, gradeLevel *string) error
	Delete(ctx context.Context, id int64) error
}

// CourseStorage is the complete course persistence surface.
type CourseStorage interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindDetailByID(ctx context.Context, id int64) (*models.CourseDetail, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id int64, req models.CourseRequest) error
	Publish(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// LessonStorage is the complete lesson persistence surface.
type LessonStorage interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error)
	FindByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, id int64, title string, kind models.LessonKind, content string, order int) error
	Delete(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, studentID, lessonID int64) error
	CountCompleted(ctx context.Context, studentID int64, lessonIDs []int64) (int, error)
}

// QuizStorage is the complete quiz result persistence surface.
type QuizStorage interface {
	RecordSubmission(ctx context.Context, result *models.QuizResult) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.QuizResult, error)
	ListByStudentAndLessons(ctx context.Context, studentID int64, lessonIDs []int64) ([]models.QuizResult, error)
}

// EvaluationStorage is the complete evaluation persistence surface.
type EvaluationStorage interface {
	List(ctx context.Context, courseID int64) ([]models.Evaluation, error)
	FindByID(ctx context.Context, id int64) (*models.Evaluation, error)
	Create(ctx context.Context, eval *models.Evaluation) error
	CreateSubmission(ctx context.Context, sub *models.EvaluationSubmission) error
	FindSubmissionByID(ctx context.Context, id int64) (*models.EvaluationSubmission, error)
	ListSubmissions(ctx context.Context, evaluationID int64) ([]models.SubmissionDetail, error)
	Grade(ctx context.Context, id int64, score float64, feedback string, gradedAt time.Time) error
	CountSubmissions(ctx context.Context, studentID int64, evaluationIDs []int64) (int, error)
}

// CalendarStorage is the complete calendar event persistence surface.
type CalendarStorage interface {
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	FindByID(ctx context.Context, id int64) (*models.CalendarEvent, error)
	Create(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStorage is the complete enrollment persistence surface.
type EnrollmentStorage interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error)
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// ParentStorage is the complete parent link persistence surface.
type ParentStorage interface {
	Exists(ctx context.Context, parentID, studentID int64) (bool, error)
	Create(ctx context.Context, link models.ParentStudentLink) error
	ListByParent(ctx context.Context, parentID int64) ([]models.ParentStudentLink, error)
}

// MessageStorage is the complete message persistence surface.
type MessageStorage interface {
	Create(ctx context.Context, msg *models.Message) error
	FindByID(ctx context.Context, id int64) (*models.Message, error)
	ListBetween(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID, otherID int64) error
}

// ContentStorage is the complete site content persistence surface.
type ContentStorage interface {
	Find(ctx context.Context, section string) (*models.SiteContent, error)
	ListStored(ctx context.Context) ([]models.SiteContent, error)
	Upsert(ctx context.Context, section string, content json.RawMessage, updatedAt time.Time) error
}

// ApplicationStorage is the complete application persistence surface.
type ApplicationStorage interface {
	List(ctx context.Context, status models.ApplicationStatus) ([]models.StudentApplication, error)
	FindByID(ctx context.Context, id int64) (*models.StudentApplication, error)
	Create(ctx context.Context, app *models.StudentApplication) error
	Review(ctx context.Context, id int64, status models.ApplicationStatus, reviewedBy int64, reviewedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// StatsStorage is the statistics computation surface.
type StatsStorage interface {
	Counts(ctx context.Context) (*models.Statistics, error)
}
