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

func seedCalendarCreator(t *testing.T, store *memstore.Store) int64 {
	t.Helper()
	director := &models.User{Email: "director@cal.test", Name: "Director", Role: models.RoleDirector, Active: true}
	require.NoError(t, store.Users().Create(context.Background(), director))
	return director.ID
}

func calendarPayload(title string, start time.Time) models.CalendarEventRequest {
	return models.CalendarEventRequest{
		Title:     title,
		Kind:      models.EventClass,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestCalendarCreateAndList(t *testing.T) {
	store := memstore.New()
	creatorID := seedCalendarCreator(t, store)
	svc := NewCalendarService(store.Calendar(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, creatorID, calendarPayload("Later", base.Add(48*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, creatorID, calendarPayload("Sooner", base))
	require.NoError(t, err)

	events, err := svc.List(ctx, models.CalendarFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

func TestCalendarListDateWindow(t *testing.T) {
	store := memstore.New()
	creatorID := seedCalendarCreator(t, store)
	svc := NewCalendarService(store.Calendar(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, creatorID, calendarPayload("Inside", base.Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, creatorID, calendarPayload("Outside", base.Add(240*time.Hour)))
	require.NoError(t, err)

	from := base
	to := base.Add(72 * time.Hour)
	events, err := svc.List(ctx, models.CalendarFilter{StartDate: &from, EndDate: &to})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Inside", events[0].Title)
}

func TestCalendarCreateUnknownKind(t *testing.T) {
	store := memstore.New()
	creatorID := seedCalendarCreator(t, store)
	svc := NewCalendarService(store.Calendar(), store.Users(), nil, zap.NewNop())

	payload := calendarPayload("Picnic", time.Now())
	payload.Kind = models.EventKind("festival")
	_, err := svc.Create(context.Background(), creatorID, payload)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestCalendarCreateUnknownCreator(t *testing.T) {
	store := memstore.New()
	svc := NewCalendarService(store.Calendar(), store.Users(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), 9999, calendarPayload("Picnic", time.Now()))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestCalendarDelete(t *testing.T) {
	store := memstore.New()
	creatorID := seedCalendarCreator(t, store)
	svc := NewCalendarService(store.Calendar(), store.Users(), nil, zap.NewNop())
	ctx := context.Background()

	event, err := svc.Create(ctx, creatorID, calendarPayload("One-off", time.Now()))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, event.ID))

	err = svc.Delete(ctx, event.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
