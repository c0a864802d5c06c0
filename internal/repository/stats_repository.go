package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// StatsRepository derives platform-wide counts.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs the repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts gathers the statistics snapshot in a single round trip.
func (r *StatsRepository) Counts(ctx context.Context) (*models.Statistics, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM users) AS total_users,
        (SELECT COUNT(*) FROM users WHERE role = 'student') AS total_students,
        (SELECT COUNT(*) FROM users WHERE role = 'teacher') AS total_teachers,
        (SELECT COUNT(*) FROM users WHERE role = 'parent') AS total_parents,
        (SELECT COUNT(*) FROM courses) AS total_courses,
        (SELECT COUNT(*) FROM courses WHERE is_published) AS published_courses,
        (SELECT COUNT(*) FROM enrollments) AS total_enrollments,
        (SELECT COUNT(*) FROM lessons) AS total_lessons,
        (SELECT COUNT(*) FROM evaluations) AS total_evaluations`

	var row struct {
		TotalUsers       int `db:"total_users"`
		TotalStudents    int `db:"total_students"`
		TotalTeachers    int `db:"total_teachers"`
		TotalParents     int `db:"total_parents"`
		TotalCourses     int `db:"total_courses"`
		PublishedCourses int `db:"published_courses"`
		TotalEnrollments int `db:"total_enrollments"`
		TotalLessons     int `db:"total_lessons"`
		TotalEvaluations int `db:"total_evaluations"`
	}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("count statistics: %w", err)
	}

	return &models.Statistics{
		TotalUsers:       row.TotalUsers,
		TotalStudents:    row.TotalStudents,
		TotalTeachers:    row.TotalTeachers,
		TotalParents:     row.TotalParents,
		TotalCourses:     row.TotalCourses,
		PublishedCourses: row.PublishedCourses,
		TotalEnrollments: row.TotalEnrollments,
		TotalLessons:     row.TotalLessons,
		TotalEvaluations: row.TotalEvaluations,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
