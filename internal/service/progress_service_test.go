package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/memstore"
	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

func newProgressService(store *memstore.Store) *ProgressService {
	return NewProgressService(
		store.Enrollments(),
		store.Courses(),
		store.Lessons(),
		store.Quizzes(),
		store.Evaluations(),
		store.Users(),
		zap.NewNop(),
	)
}

func seedProgressFixture(t *testing.T, store *memstore.Store) (studentID, courseID int64, lessonIDs []int64) {
	t.Helper()
	ctx := context.Background()

	student := &models.User{Email: "student@progress.test", Name: "Ana", Role: models.RoleStudent, Active: true}
	require.NoError(t, store.Users().Create(ctx, student))
	teacher := &models.User{Email: "teacher@progress.test", Name: "Mr. T", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))

	course := &models.Course{Title: "Biology", Description: "Cells", TeacherID: teacher.ID}
	require.NoError(t, store.Courses().Create(ctx, course))
	require.NoError(t, store.Enrollments().Create(ctx, &models.Enrollment{StudentID: student.ID, CourseID: course.ID}))

	for i, kind := range []models.LessonKind{models.LessonText, models.LessonVideo, models.LessonQuiz} {
		lesson := &models.Lesson{CourseID: course.ID, Title: "Lesson", Kind: kind, Content: "[]", Order: i + 1}
		require.NoError(t, store.Lessons().Create(ctx, lesson))
		lessonIDs = append(lessonIDs, lesson.ID)
	}
	return student.ID, course.ID, lessonIDs
}

func TestProgressCompletedNeverExceedsTotal(t *testing.T) {
	store := memstore.New()
	studentID, _, lessonIDs := seedProgressFixture(t, store)
	ctx := context.Background()

	for _, id := range lessonIDs {
		require.NoError(t, store.Lessons().MarkCompleted(ctx, studentID, id))
	}
	// A repeat completion must not inflate the count.
	require.NoError(t, store.Lessons().MarkCompleted(ctx, studentID, lessonIDs[0]))

	progress, err := newProgressService(store).ForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 3, progress[0].TotalLessons)
	assert.Equal(t, 3, progress[0].CompletedLessons)
	assert.LessOrEqual(t, progress[0].CompletedLessons, progress[0].TotalLessons)
}

func TestProgressAverageNilWithoutQuizResults(t *testing.T) {
	store := memstore.New()
	studentID, _, _ := seedProgressFixture(t, store)

	progress, err := newProgressService(store).ForStudent(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Nil(t, progress[0].AverageQuizScore)
	assert.Equal(t, 0, progress[0].CompletedLessons)
}

func TestProgressAverageOverQuizResults(t *testing.T) {
	store := memstore.New()
	studentID, _, lessonIDs := seedProgressFixture(t, store)
	ctx := context.Background()
	quizLessonID := lessonIDs[2]

	for _, score := range []float64{60, 100} {
		result := &models.QuizResult{
			LessonID:       quizLessonID,
			StudentID:      studentID,
			Score:          score,
			TotalQuestions: 5,
			CorrectAnswers: int(score / 20),
		}
		require.NoError(t, store.Quizzes().RecordSubmission(ctx, result))
	}

	progress, err := newProgressService(store).ForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	require.NotNil(t, progress[0].AverageQuizScore)
	assert.InDelta(t, 80.0, *progress[0].AverageQuizScore, 0.001)
	// Recording a quiz result also marks the lesson completed.
	assert.Equal(t, 1, progress[0].CompletedLessons)
}

func TestProgressCountsEvaluations(t *testing.T) {
	store := memstore.New()
	studentID, courseID, _ := seedProgressFixture(t, store)
	ctx := context.Background()

	eval := &models.Evaluation{Title: "Essay", Description: "Write", CourseID: courseID, DueDate: time.Now().Add(72 * time.Hour), MaxScore: 100}
	require.NoError(t, store.Evaluations().Create(ctx, eval))
	eval2 := &models.Evaluation{Title: "Lab", Description: "Report", CourseID: courseID, DueDate: time.Now().Add(96 * time.Hour), MaxScore: 100}
	require.NoError(t, store.Evaluations().Create(ctx, eval2))

	sub := &models.EvaluationSubmission{EvaluationID: eval.ID, StudentID: studentID, Content: "done"}
	require.NoError(t, store.Evaluations().CreateSubmission(ctx, sub))

	progress, err := newProgressService(store).ForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 2, progress[0].TotalEvaluations)
	assert.Equal(t, 1, progress[0].EvaluationsCompleted)
}

func TestProgressUnknownStudent(t *testing.T) {
	store := memstore.New()
	_, err := newProgressService(store).ForStudent(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestProgressExportFormats(t *testing.T) {
	store := memstore.New()
	studentID, _, _ := seedProgressFixture(t, store)
	svc := newProgressService(store)
	ctx := context.Background()

	data, contentType, err := svc.Export(ctx, studentID, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(data), "Biology")

	data, contentType, err = svc.Export(ctx, studentID, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, data)

	_, _, err = svc.Export(ctx, studentID, "xml")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
