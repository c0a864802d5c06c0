package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ParentRepository handles persistence of parent-student links.
type ParentRepository struct {
	db *sqlx.DB
}

// NewParentRepository constructs the repository.
func NewParentRepository(db *sqlx.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// Exists checks whether the link already exists.
func (r *ParentRepository) Exists(ctx context.Context, parentID, studentID int64) (bool, error) {
	const query = `SELECT 1 FROM parent_student_links WHERE parent_id = $1 AND student_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, parentID, studentID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check parent link: %w", err)
	}
	return true, nil
}

// Create persists a new link.
func (r *ParentRepository) Create(ctx context.Context, link models.ParentStudentLink) error {
	const query = `INSERT INTO parent_student_links (parent_id, student_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, link.ParentID, link.StudentID); err != nil {
		return fmt.Errorf("create parent link: %w", err)
	}
	return nil
}

// ListByParent returns all links for a parent in insertion order.
func (r *ParentRepository) ListByParent(ctx context.Context, parentID int64) ([]models.ParentStudentLink, error) {
	const query = `SELECT parent_id, student_id FROM parent_student_links WHERE parent_id = $1`
	var links []models.ParentStudentLink
	if err := r.db.SelectContext(ctx, &links, query, parentID); err != nil {
		return nil, fmt.Errorf("list parent links: %w", err)
	}
	return links, nil
}
