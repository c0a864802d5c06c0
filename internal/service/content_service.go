package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type contentRepository interface {
	Find(ctx context.Context, section string) (*models.SiteContent, error)
	ListStored(ctx context.Context) ([]models.SiteContent, error)
	Upsert(ctx context.Context, section string, content json.RawMessage, updatedAt time.Time) error
}

// ContentService serves the public site sections, falling back to the
// built-in defaults for sections that were never written.
type ContentService struct {
	content   contentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContentService constructs the content service.
func NewContentService(content contentRepository, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{content: content, validator: validate, logger: logger}
}

// All returns every section in the fixed order, stored payloads taking
// precedence over defaults.
func (s *ContentService) All(ctx context.Context) ([]models.SiteContent, error) {
	stored, err := s.content.ListStored(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list site content")
	}
	bySection := make(map[string]models.SiteContent, len(stored))
	for _, sc := range stored {
		bySection[sc.Section] = sc
	}
	sections := make([]models.SiteContent, 0, len(models.SiteSections))
	for _, name := range models.SiteSections {
		if sc, ok := bySection[name]; ok {
			sections = append(sections, sc)
			continue
		}
		sections = append(sections, models.SiteContent{Section: name, Content: models.DefaultSiteContent[name]})
	}
	return sections, nil
}

// Get returns one section, default payload when never written. Unknown
// section names are not found.
func (s *ContentService) Get(ctx context.Context, section string) (*models.SiteContent, error) {
	if !models.KnownSection(section) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown section")
	}
	sc, err := s.content.Find(ctx, section)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.SiteContent{Section: section, Content: models.DefaultSiteContent[section]}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site content")
	}
	return sc, nil
}

// Update replaces a section's payload. Unknown section names are rejected.
func (s *ContentService) Update(ctx context.Context, section string, req models.SiteContentRequest) (*models.SiteContent, error) {
	if !models.KnownSection(section) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown section")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid content payload")
	}
	updatedAt := time.Now().UTC()
	if err := s.content.Upsert(ctx, section, req.Content, updatedAt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update site content")
	}
	s.logger.Info("site content updated", zap.String("section", section))
	return &models.SiteContent{Section: section, Content: req.Content, UpdatedAt: updatedAt}, nil
}
