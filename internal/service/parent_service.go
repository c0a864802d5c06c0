package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type parentRepository interface {
	Exists(ctx context.Context, parentID, studentID int64) (bool, error)
	Create(ctx context.Context, link models.ParentStudentLink) error
	ListByParent(ctx context.Context, parentID int64) ([]models.ParentStudentLink, error)
}

type parentUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type childProgressProvider interface {
	ForStudent(ctx context.Context, studentID int64) ([]models.StudentProgress, error)
}

// ParentService handles parent-student link use-cases.
type ParentService struct {
	parents   parentRepository
	users     parentUserRepository
	progress  childProgressProvider
	validator *validator.Validate
	logger    *zap.Logger
}

// NewParentService constructs the parent service.
func NewParentService(parents parentRepository, users parentUserRepository, progress childProgressProvider, validate *validator.Validate, logger *zap.Logger) *ParentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParentService{parents: parents, users: users, progress: progress, validator: validate, logger: logger}
}

// Link ties a parent account to a student account. Both ends are
// role-checked and linking the same pair twice is rejected.
func (s *ParentService) Link(ctx context.Context, link models.ParentStudentLink) error {
	if err := s.validator.Struct(link); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid link payload")
	}
	parent, err := s.users.FindByID(ctx, link.ParentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "parent not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load parent")
	}
	if parent.Role != models.RoleParent {
		return appErrors.Clone(appErrors.ErrValidation, "user is not a parent")
	}
	student, err := s.users.FindByID(ctx, link.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if student.Role != models.RoleStudent {
		return appErrors.Clone(appErrors.ErrValidation, "user is not a student")
	}
	exists, err := s.parents.Exists(ctx, link.ParentID, link.StudentID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check link")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "link already exists")
	}
	if err := s.parents.Create(ctx, link); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create link")
	}
	s.logger.Info("parent linked", zap.Int64("parent_id", link.ParentID), zap.Int64("student_id", link.StudentID))
	return nil
}

// ChildrenProgress returns every linked child with their full progress list.
func (s *ParentService) ChildrenProgress(ctx context.Context, parentID int64) ([]models.ChildProgress, error) {
	parent, err := s.users.FindByID(ctx, parentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "parent not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load parent")
	}
	if parent.Role != models.RoleParent {
		return nil, appErrors.Clone(appErrors.ErrValidation, "user is not a parent")
	}
	links, err := s.parents.ListByParent(ctx, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list links")
	}
	children := make([]models.ChildProgress, 0, len(links))
	for _, link := range links {
		student, err := s.users.FindByID(ctx, link.StudentID)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
		}
		progress, err := s.progress.ForStudent(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		children = append(children, models.ChildProgress{Student: *student, Courses: progress})
	}
	return children, nil
}
