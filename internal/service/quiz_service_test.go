package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/memstore"
	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

func seedQuizFixture(t *testing.T, store *memstore.Store, content string, kind models.LessonKind) (studentID, lessonID int64) {
	t.Helper()
	ctx := context.Background()

	student := &models.User{Email: "student@example.com", Name: "Student", Role: models.RoleStudent, Active: true}
	require.NoError(t, store.Users().Create(ctx, student))
	teacher := &models.User{Email: "teacher@example.com", Name: "Teacher", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))

	course := &models.Course{Title: "Math", Description: "Numbers", TeacherID: teacher.ID}
	require.NoError(t, store.Courses().Create(ctx, course))

	lesson := &models.Lesson{CourseID: course.ID, Title: "Quiz 1", Kind: kind, Content: content, Order: 1}
	require.NoError(t, store.Lessons().Create(ctx, lesson))
	return student.ID, lesson.ID
}

func TestQuizSubmitGradesAgainstQuestionList(t *testing.T) {
	store := memstore.New()
	content := `[{"question":"1+1","options":["1","2"],"correct_answer":1},` +
		`{"question":"2+2","options":["3","4"],"correct_answer":1},` +
		`{"question":"3+3","options":["6","7"],"correct_answer":0},` +
		`{"question":"4+4","options":["8","9"],"correct_answer":0}]`
	studentID, lessonID := seedQuizFixture(t, store, content, models.LessonQuiz)
	svc := NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, zap.NewNop())

	result, err := svc.Submit(context.Background(), studentID, models.QuizSubmission{
		LessonID: lessonID,
		Answers:  []int{1, 1, 1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.InDelta(t, 75.0, result.Score, 0.001)
	assert.NotZero(t, result.ID)
}

func TestQuizSubmitExtraAnswersIgnored(t *testing.T) {
	store := memstore.New()
	content := `[{"question":"1+1","options":["1","2"],"correct_answer":1}]`
	studentID, lessonID := seedQuizFixture(t, store, content, models.LessonQuiz)
	svc := NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, zap.NewNop())

	result, err := svc.Submit(context.Background(), studentID, models.QuizSubmission{
		LessonID: lessonID,
		Answers:  []int{1, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalQuestions)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.InDelta(t, 100.0, result.Score, 0.001)
}

func TestQuizSubmitNoQuestionsScoresZero(t *testing.T) {
	store := memstore.New()
	studentID, lessonID := seedQuizFixture(t, store, `[]`, models.LessonQuiz)
	svc := NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, zap.NewNop())

	result, err := svc.Submit(context.Background(), studentID, models.QuizSubmission{
		LessonID: lessonID,
		Answers:  []int{0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Zero(t, result.Score)
}

func TestQuizSubmitRejectsNonQuizLesson(t *testing.T) {
	store := memstore.New()
	studentID, lessonID := seedQuizFixture(t, store, "https://video.example.com/1", models.LessonVideo)
	svc := NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, zap.NewNop())

	_, err := svc.Submit(context.Background(), studentID, models.QuizSubmission{LessonID: lessonID, Answers: []int{0}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestQuizSubmitRecordsCompletionOnce(t *testing.T) {
	store := memstore.New()
	content := `[{"question":"1+1","options":["1","2"],"correct_answer":1}]`
	studentID, lessonID := seedQuizFixture(t, store, content, models.LessonQuiz)
	svc := NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Submit(ctx, studentID, models.QuizSubmission{LessonID: lessonID, Answers: []int{1}})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, studentID, models.QuizSubmission{LessonID: lessonID, Answers: []int{0}})
	require.NoError(t, err)

	count, err := store.Lessons().CountCompleted(ctx, studentID, []int64{lessonID})
	require.NoError(t, err)
	assert.Equal(t, 1, count, "completions must stay idempotent across attempts")

	results, err := svc.ResultsByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, results, 2, "every attempt must be recorded")
}
