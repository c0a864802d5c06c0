package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// CalendarRepository handles persistence of calendar events.
type CalendarRepository struct {
	db *sqlx.DB
}

// NewCalendarRepository constructs the repository.
func NewCalendarRepository(db *sqlx.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// List returns events matching the filter, sorted by start time.
func (r *CalendarRepository) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	base := `SELECT id, title, description, event_type, start_time, end_time, course_id, created_by, created_at FROM calendar_events`
	var conditions []string
	var args []interface{}

	if filter.CourseID != 0 {
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", len(args)+1))
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("end_time <= $%d", len(args)+1))
		args = append(args, *filter.EndDate)
	}

	query := base
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time"

	var events []models.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}

// FindByID returns an event by its ID.
func (r *CalendarRepository) FindByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	const query = `SELECT id, title, description, event_type, start_time, end_time, course_id, created_by, created_at FROM calendar_events WHERE id = $1`
	var event models.CalendarEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return &event, nil
}

// Create persists a new event and populates its id.
func (r *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO calendar_events (title, description, event_type, start_time, end_time, course_id, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		event.Title, event.Description, event.Kind, event.StartTime, event.EndTime, event.CourseID, event.CreatedBy, event.CreatedAt,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *CalendarRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM calendar_events WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}
