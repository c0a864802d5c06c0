package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type applicationRepository interface {
	List(ctx context.Context, status models.ApplicationStatus) ([]models.StudentApplication, error)
	FindByID(ctx context.Context, id int64) (*models.StudentApplication, error)
	Create(ctx context.Context, app *models.StudentApplication) error
	Review(ctx context.Context, id int64, status models.ApplicationStatus, reviewedBy int64, reviewedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

type applicationUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// ApplicationService handles admission application use-cases.
type ApplicationService struct {
	applications applicationRepository
	users        applicationUserRepository
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewApplicationService constructs the application service.
func NewApplicationService(applications applicationRepository, users applicationUserRepository, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{applications: applications, users: users, validator: validate, logger: logger}
}

// List returns applications newest-first, optionally filtered by status.
func (s *ApplicationService) List(ctx context.Context, status models.ApplicationStatus) ([]models.StudentApplication, error) {
	if status != "" && !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown status")
	}
	apps, err := s.applications.List(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
	}
	return apps, nil
}

// Get returns one application by id.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.StudentApplication, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}
	return app, nil
}

// Create files a new application in pending state. The endpoint is public,
// no account needed.
func (s *ApplicationService) Create(ctx context.Context, req models.ApplicationRequest) (*models.StudentApplication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	app := &models.StudentApplication{
		StudentName: req.StudentName,
		StudentAge:  req.StudentAge,
		GradeLevel:  req.GradeLevel,
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		ParentPhone: req.ParentPhone,
		Address:     req.Address,
		Message:     req.Message,
		Status:      models.ApplicationPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create application")
	}
	s.logger.Info("application received", zap.Int64("application_id", app.ID))
	return app, nil
}

// Review sets the application status along with the reviewer and timestamp.
// Only directors and superusers may review; reviewing again is allowed and
// replaces the previous outcome.
func (s *ApplicationService) Review(ctx context.Context, id int64, status models.ApplicationStatus, reviewedBy int64) (*models.StudentApplication, error) {
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown status")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	reviewer, err := s.users.FindByID(ctx, reviewedBy)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reviewer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reviewer")
	}
	if !reviewer.Role.CanReviewApplications() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "role may not review applications")
	}
	if err := s.applications.Review(ctx, id, status, reviewedBy, time.Now().UTC()); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to review application")
	}
	s.logger.Info("application reviewed",
		zap.Int64("application_id", id),
		zap.String("status", string(status)),
		zap.Int64("reviewed_by", reviewedBy))
	return s.Get(ctx, id)
}

// Delete removes an application record.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete application")
	}
	return nil
}
