package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type calendarRepository interface {
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	FindByID(ctx context.Context, id int64) (*models.CalendarEvent, error)
	Create(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}

type calendarUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// CalendarService handles calendar event use-cases.
type CalendarService struct {
	events    calendarRepository
	users     calendarUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs the calendar service.
func NewCalendarService(events calendarRepository, users calendarUserRepository, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{events: events, users: users, validator: validate, logger: logger}
}

// List returns events matching the filter ordered by start time.
func (s *CalendarService) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Create stores a new event. Overlapping events are allowed.
func (s *CalendarService) Create(ctx context.Context, createdBy int64, req models.CalendarEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if !req.Kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown event type")
	}
	if _, err := s.users.FindByID(ctx, createdBy); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "creator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load creator")
	}
	event := &models.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CourseID:    req.CourseID,
		CreatedBy:   createdBy,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return event, nil
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id int64) error {
	if _, err := s.events.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}
