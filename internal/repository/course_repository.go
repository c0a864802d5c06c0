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

// CourseRepository handles persistence of courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseDetailColumns = `c.id, c.title, c.description, c.thumbnail_url, c.grade_level, c.teacher_id, c.is_published, c.created_at,
        COALESCE(u.name, 'Unknown') AS teacher_name`

// List returns courses matching the filter with teacher names inlined.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error) {
	base := fmt.Sprintf(`SELECT %s FROM courses c LEFT JOIN users u ON u.id = c.teacher_id`, courseDetailColumns)
	var conditions []string
	var args []interface{}

	if filter.TeacherID != 0 {
		conditions = append(conditions, fmt.Sprintf("c.teacher_id = $%d", len(args)+1))
		args = append(args, filter.TeacherID)
	}
	if filter.PublishedOnly {
		conditions = append(conditions, "c.is_published = TRUE")
	}

	query := base
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.id"

	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID returns a course by its ID.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, title, description, thumbnail_url, grade_level, teacher_id, is_published, created_at FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return &course, nil
}

// FindDetailByID returns a course with the teacher name inlined.
func (r *CourseRepository) FindDetailByID(ctx context.Context, id int64) (*models.CourseDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses c LEFT JOIN users u ON u.id = c.teacher_id WHERE c.id = $1`, courseDetailColumns)
	var detail models.CourseDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course detail: %w", err)
	}
	return &detail, nil
}

// Create persists a new course and populates its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (title, description, thumbnail_url, grade_level, teacher_id, is_published, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		course.Title, course.Description, course.ThumbnailURL, course.GradeLevel, course.TeacherID, course.Published, course.CreatedAt,
	).Scan(&course.ID); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update replaces the editable course fields.
func (r *CourseRepository) Update(ctx context.Context, id int64, req models.CourseRequest) error {
	const query = `UPDATE courses SET title = $2, description = $3, thumbnail_url = $4, grade_level = $5 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, req.Title, req.Description, req.ThumbnailURL, req.GradeLevel); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Publish flips the published flag to true. Idempotent.
func (r *CourseRepository) Publish(ctx context.Context, id int64) error {
	const query = `UPDATE courses SET is_published = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("publish course: %w", err)
	}
	return nil
}

// Delete removes a course. Lessons, completions, quiz results, enrollments,
// evaluations and submissions go with it via ON DELETE CASCADE.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM courses WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
