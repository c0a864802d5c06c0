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

func applicationPayload() models.ApplicationRequest {
	return models.ApplicationRequest{
		StudentName: "Noa Levi",
		StudentAge:  9,
		GradeLevel:  "4th",
		ParentName:  "Dana Levi",
		ParentEmail: "dana@example.com",
		ParentPhone: "555-0101",
	}
}

func TestApplicationCreateStartsPending(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())

	app, err := svc.Create(context.Background(), applicationPayload())
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Nil(t, app.ReviewedAt)
	assert.Nil(t, app.ReviewedBy)
}

func TestApplicationCreateValidatesPayload(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())

	payload := applicationPayload()
	payload.ParentEmail = "not-an-email"
	_, err := svc.Create(context.Background(), payload)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestApplicationReviewByDirector(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	director := &models.User{Email: "director@apps.test", Name: "Director", Role: models.RoleDirector, Active: true}
	require.NoError(t, store.Users().Create(ctx, director))
	app, err := svc.Create(ctx, applicationPayload())
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, app.ID, models.ApplicationApproved, director.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, director.ID, *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)
}

func TestApplicationReviewForbiddenForTeacher(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	teacher := &models.User{Email: "teacher@apps.test", Name: "Teacher", Role: models.RoleTeacher, Active: true}
	require.NoError(t, store.Users().Create(ctx, teacher))
	app, err := svc.Create(ctx, applicationPayload())
	require.NoError(t, err)

	_, err = svc.Review(ctx, app.ID, models.ApplicationApproved, teacher.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
}

func TestApplicationReviewReplacesPreviousOutcome(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	director := &models.User{Email: "director@apps.test", Name: "Director", Role: models.RoleDirector, Active: true}
	require.NoError(t, store.Users().Create(ctx, director))
	app, err := svc.Create(ctx, applicationPayload())
	require.NoError(t, err)

	_, err = svc.Review(ctx, app.ID, models.ApplicationRejected, director.ID)
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, app.ID, models.ApplicationApproved, director.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, reviewed.Status)
}

func TestApplicationReviewUnknownStatus(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())

	_, err := svc.Review(context.Background(), 1, models.ApplicationStatus("maybe"), 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestApplicationListFilterByStatus(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	director := &models.User{Email: "director@apps.test", Name: "Director", Role: models.RoleDirector, Active: true}
	require.NoError(t, store.Users().Create(ctx, director))

	first, err := svc.Create(ctx, applicationPayload())
	require.NoError(t, err)
	second := applicationPayload()
	second.StudentName = "Avi Levi"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	_, err = svc.Review(ctx, first.ID, models.ApplicationApproved, director.ID)
	require.NoError(t, err)

	pending, err := svc.List(ctx, models.ApplicationPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, models.ApplicationStatus("archived"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestApplicationDelete(t *testing.T) {
	store := memstore.New()
	svc := NewApplicationService(store.Applications(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	app, err := svc.Create(ctx, applicationPayload())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, app.ID))

	_, err = svc.Get(ctx, app.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
