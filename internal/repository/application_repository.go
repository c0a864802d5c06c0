package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ApplicationRepository handles persistence of student applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, student_name, student_age, grade_level, parent_name, parent_email, parent_phone, address, message, status, created_at, reviewed_at, reviewed_by`

// List returns applications newest first, optionally filtered by status.
func (r *ApplicationRepository) List(ctx context.Context, status models.ApplicationStatus) ([]models.StudentApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns)
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var apps []models.StudentApplication
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// FindByID returns an application by its ID.
func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*models.StudentApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)
	var app models.StudentApplication
	if err := r.db.GetContext(ctx, &app, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	return &app, nil
}

// Create persists a new pending application and populates its id.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.StudentApplication) error {
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO applications (student_name, student_age, grade_level, parent_name, parent_email, parent_phone, address, message, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		app.StudentName, app.StudentAge, app.GradeLevel, app.ParentName, app.ParentEmail, app.ParentPhone, app.Address, app.Message, app.Status, app.CreatedAt,
	).Scan(&app.ID); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// Review records the status decision together with reviewer and timestamp.
func (r *ApplicationRepository) Review(ctx context.Context, id int64, status models.ApplicationStatus, reviewedBy int64, reviewedAt time.Time) error {
	const query = `UPDATE applications SET status = $2, reviewed_by = $3, reviewed_at = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, reviewedBy, reviewedAt); err != nil {
		return fmt.Errorf("review application: %w", err)
	}
	return nil
}

// Delete removes an application record.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM applications WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
