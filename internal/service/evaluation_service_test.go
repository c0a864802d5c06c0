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

func seedEvaluationFixture(t *testing.T, store *memstore.Store) (studentID, courseID int64) {
	t.Helper()
	ctx := context.Background()
	student := &models.User{Email: "student@eval.test", Name: "Student", Role: models.RoleStudent, Active: true}
	require.NoError(t, store.Users().Create(ctx, student))
	teacher := &models.User{Email: "teacher@eval.test", Name: "Teacher", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))
	course := &models.Course{Title: "Chemistry", Description: "Atoms", TeacherID: teacher.ID}
	require.NoError(t, store.Courses().Create(ctx, course))
	return student.ID, course.ID
}

func TestEvaluationCreateDefaultsMaxScore(t *testing.T) {
	store := memstore.New()
	_, courseID := seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())

	eval, err := svc.Create(context.Background(), models.EvaluationRequest{
		Title:       "Midterm",
		Description: "Chapters 1-4",
		CourseID:    courseID,
		DueDate:     time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, eval.MaxScore, 0.001)
}

func TestEvaluationCreateUnknownCourse(t *testing.T) {
	store := memstore.New()
	seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), models.EvaluationRequest{
		Title:       "Midterm",
		Description: "Chapters 1-4",
		CourseID:    9999,
		DueDate:     time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestEvaluationSubmitStartsUngraded(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	eval, err := svc.Create(ctx, models.EvaluationRequest{Title: "Lab", Description: "Report", CourseID: courseID, DueDate: time.Now(), MaxScore: 50})
	require.NoError(t, err)

	sub, err := svc.Submit(ctx, studentID, models.SubmitEvaluationRequest{EvaluationID: eval.ID, Content: "my answer"})
	require.NoError(t, err)
	assert.Nil(t, sub.Score)
	assert.Nil(t, sub.Feedback)
	assert.Nil(t, sub.GradedAt)
}

func TestEvaluationGradeAndRegrade(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	eval, err := svc.Create(ctx, models.EvaluationRequest{Title: "Lab", Description: "Report", CourseID: courseID, DueDate: time.Now(), MaxScore: 50})
	require.NoError(t, err)
	sub, err := svc.Submit(ctx, studentID, models.SubmitEvaluationRequest{EvaluationID: eval.ID, Content: "my answer"})
	require.NoError(t, err)

	graded, err := svc.Grade(ctx, models.GradeRequest{SubmissionID: sub.ID, Score: 42, Feedback: "solid"})
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.InDelta(t, 42.0, *graded.Score, 0.001)
	require.NotNil(t, graded.Feedback)
	assert.Equal(t, "solid", *graded.Feedback)
	assert.NotNil(t, graded.GradedAt)

	regraded, err := svc.Grade(ctx, models.GradeRequest{SubmissionID: sub.ID, Score: 45, Feedback: "better than I thought"})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, *regraded.Score, 0.001)
}

func TestEvaluationGradeUnknownSubmission(t *testing.T) {
	store := memstore.New()
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())

	_, err := svc.Grade(context.Background(), models.GradeRequest{SubmissionID: 9999, Score: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestEvaluationSubmissionsIncludeStudentName(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	eval, err := svc.Create(ctx, models.EvaluationRequest{Title: "Lab", Description: "Report", CourseID: courseID, DueDate: time.Now(), MaxScore: 50})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, studentID, models.SubmitEvaluationRequest{EvaluationID: eval.ID, Content: "my answer"})
	require.NoError(t, err)

	subs, err := svc.Submissions(ctx, eval.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Student", subs[0].StudentName)
}

func TestEvaluationListByCourse(t *testing.T) {
	store := memstore.New()
	_, courseID := seedEvaluationFixture(t, store)
	svc := NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.EvaluationRequest{Title: "A", Description: "a", CourseID: courseID, DueDate: time.Now()})
	require.NoError(t, err)

	evals, err := svc.List(ctx, courseID)
	require.NoError(t, err)
	assert.Len(t, evals, 1)

	none, err := svc.List(ctx, courseID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
