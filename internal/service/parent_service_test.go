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

func newParentService(store *memstore.Store) *ParentService {
	return NewParentService(store.Parents(), store.Users(), newProgressService(store), nil, zap.NewNop())
}

func seedParentFixture(t *testing.T, store *memstore.Store) (parentID, studentID int64) {
	t.Helper()
	ctx := context.Background()
	parent := &models.User{Email: "parent@link.test", Name: "Parent", Role: models.RoleParent, Active: true}
	require.NoError(t, store.Users().Create(ctx, parent))
	student := &models.User{Email: "student@link.test", Name: "Child", Role: models.RoleStudent, Active: true}
	require.NoError(t, store.Users().Create(ctx, student))
	return parent.ID, student.ID
}

func TestParentLinkRejectsWrongRoles(t *testing.T) {
	store := memstore.New()
	parentID, studentID := seedParentFixture(t, store)
	svc := newParentService(store)
	ctx := context.Background()

	teacher := &models.User{Email: "teacher@link.test", Name: "Teacher", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))

	err := svc.Link(ctx, models.ParentStudentLink{ParentID: teacher.ID, StudentID: studentID})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	err = svc.Link(ctx, models.ParentStudentLink{ParentID: parentID, StudentID: teacher.ID})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestParentLinkDuplicateConflicts(t *testing.T) {
	store := memstore.New()
	parentID, studentID := seedParentFixture(t, store)
	svc := newParentService(store)
	ctx := context.Background()

	require.NoError(t, svc.Link(ctx, models.ParentStudentLink{ParentID: parentID, StudentID: studentID}))

	err := svc.Link(ctx, models.ParentStudentLink{ParentID: parentID, StudentID: studentID})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestParentLinkUnknownStudent(t *testing.T) {
	store := memstore.New()
	parentID, _ := seedParentFixture(t, store)
	svc := newParentService(store)

	err := svc.Link(context.Background(), models.ParentStudentLink{ParentID: parentID, StudentID: 9999})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestParentChildrenProgress(t *testing.T) {
	store := memstore.New()
	parentID, studentID := seedParentFixture(t, store)
	svc := newParentService(store)
	ctx := context.Background()

	teacher := &models.User{Email: "teacher@children.test", Name: "Teacher", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))
	course := &models.Course{Title: "Music", Description: "Scales", TeacherID: teacher.ID}
	require.NoError(t, store.Courses().Create(ctx, course))
	require.NoError(t, store.Enrollments().Create(ctx, &models.Enrollment{StudentID: studentID, CourseID: course.ID}))

	require.NoError(t, svc.Link(ctx, models.ParentStudentLink{ParentID: parentID, StudentID: studentID}))

	children, err := svc.ChildrenProgress(ctx, parentID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, studentID, children[0].Student.ID)
	require.Len(t, children[0].Courses, 1)
	assert.Equal(t, "Music", children[0].Courses[0].CourseTitle)
}

func TestParentChildrenProgressWrongRole(t *testing.T) {
	store := memstore.New()
	_, studentID := seedParentFixture(t, store)
	svc := newParentService(store)

	_, err := svc.ChildrenProgress(context.Background(), studentID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
