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

func seedEnrollmentFixture(t *testing.T, store *memstore.Store) (studentID, courseID int64) {
	t.Helper()
	ctx := context.Background()
	student := &models.User{Email: "s@example.com", Name: "S", Role: models.RoleStudent, Active: true}
	require.NoError(t, store.Users().Create(ctx, student))
	teacher := &models.User{Email: "t@example.com", Name: "T", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))
	course := &models.Course{Title: "History", Description: "Past", TeacherID: teacher.ID}
	require.NoError(t, store.Courses().Create(ctx, course))
	return student.ID, course.ID
}

func TestEnrollmentDuplicatePairConflicts(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEnrollmentFixture(t, store)
	svc := NewEnrollmentService(store.Enrollments(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, models.EnrollmentRequest{StudentID: studentID, CourseID: courseID})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.Create(ctx, models.EnrollmentRequest{StudentID: studentID, CourseID: courseID})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)

	enrollments, err := svc.List(ctx, models.EnrollmentFilter{StudentID: studentID})
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestEnrollmentUnknownReferences(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEnrollmentFixture(t, store)
	svc := NewEnrollmentService(store.Enrollments(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.EnrollmentRequest{StudentID: 9999, CourseID: courseID})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)

	_, err = svc.Create(ctx, models.EnrollmentRequest{StudentID: studentID, CourseID: 9999})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestEnrollmentDelete(t *testing.T) {
	store := memstore.New()
	studentID, courseID := seedEnrollmentFixture(t, store)
	svc := NewEnrollmentService(store.Enrollments(), store.Courses(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	enrollment, err := svc.Create(ctx, models.EnrollmentRequest{StudentID: studentID, CourseID: courseID})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, enrollment.ID))

	err = svc.Delete(ctx, enrollment.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
