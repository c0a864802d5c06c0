package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// LessonRepository handles persistence of lessons and completion markers.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs the repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListByCourse returns a course's lessons ordered by their display position.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	const query = `SELECT id, course_id, title, lesson_type, content, position, created_at FROM lessons WHERE course_id = $1 ORDER BY position, id`
	var lessons []models.Lesson
	if err := r.db.SelectContext(ctx, &lessons, query, courseID); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// FindByID returns a lesson by its ID.
func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	const query = `SELECT id, course_id, title, lesson_type, content, position, created_at FROM lessons WHERE id = $1`
	var lesson models.Lesson
	if err := r.db.GetContext(ctx, &lesson, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find lesson by id: %w", err)
	}
	return &lesson, nil
}

// Create persists a new lesson and populates its id.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO lessons (course_id, title, lesson_type, content, position, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		lesson.CourseID, lesson.Title, lesson.Kind, lesson.Content, lesson.Order, lesson.CreatedAt,
	).Scan(&lesson.ID); err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}

// Update replaces the editable lesson fields.
func (r *LessonRepository) Update(ctx context.Context, id int64, title string, kind models.LessonKind, content string, order int) error {
	const query = `UPDATE lessons SET title = $2, lesson_type = $3, content = $4, position = $5 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, title, kind, content, order); err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return nil
}

// Delete removes a lesson; completions and quiz results cascade.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM lessons WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	return nil
}

// MarkCompleted records the completion marker. Repeat calls for the same
// (student, lesson) pair are no-ops.
func (r *LessonRepository) MarkCompleted(ctx context.Context, studentID, lessonID int64) error {
	const query = `INSERT INTO lesson_completions (student_id, lesson_id, completed_at)
        VALUES ($1, $2, $3) ON CONFLICT (student_id, lesson_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, studentID, lessonID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark lesson completed: %w", err)
	}
	return nil
}

// CountCompleted returns how many of the given lessons the student finished.
func (r *LessonRepository) CountCompleted(ctx context.Context, studentID int64, lessonIDs []int64) (int, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM lesson_completions WHERE student_id = ? AND lesson_id IN (?)`, studentID, lessonIDs)
	if err != nil {
		return 0, fmt.Errorf("build completion count query: %w", err)
	}
	query = r.db.Rebind(query)
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return count, nil
}
