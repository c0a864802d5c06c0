package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ContentRepository handles persistence of site content sections.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository constructs the repository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Find returns a stored section, or sql.ErrNoRows if it was never written.
func (r *ContentRepository) Find(ctx context.Context, section string) (*models.SiteContent, error) {
	const query = `SELECT section, content, updated_at FROM site_content WHERE section = $1`
	var content models.SiteContent
	if err := r.db.GetContext(ctx, &content, query, section); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find site content: %w", err)
	}
	return &content, nil
}

// ListStored returns every section that has been written.
func (r *ContentRepository) ListStored(ctx context.Context) ([]models.SiteContent, error) {
	const query = `SELECT section, content, updated_at FROM site_content`
	var contents []models.SiteContent
	if err := r.db.SelectContext(ctx, &contents, query); err != nil {
		return nil, fmt.Errorf("list site content: %w", err)
	}
	return contents, nil
}

// Upsert writes the section payload, replacing any previous value.
func (r *ContentRepository) Upsert(ctx context.Context, section string, content json.RawMessage, updatedAt time.Time) error {
	const query = `INSERT INTO site_content (section, content, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (section) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, section, content, updatedAt); err != nil {
		return fmt.Errorf("upsert site content: %w", err)
	}
	return nil
}
