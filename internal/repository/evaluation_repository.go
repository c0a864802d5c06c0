package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// EvaluationRepository handles persistence of evaluations and submissions.
type EvaluationRepository struct {
	db *sqlx.DB
}

// NewEvaluationRepository constructs the repository.
func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// List returns evaluations, optionally restricted to one course.
func (r *EvaluationRepository) List(ctx context.Context, courseID int64) ([]models.Evaluation, error) {
	query := `SELECT id, title, description, course_id, due_date, max_score, created_at FROM evaluations`
	var args []interface{}
	if courseID != 0 {
		query += ` WHERE course_id = $1`
		args = append(args, courseID)
	}
	query += ` ORDER BY id`

	var evals []models.Evaluation
	if err := r.db.SelectContext(ctx, &evals, query, args...); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evals, nil
}

// FindByID returns an evaluation by its ID.
func (r *EvaluationRepository) FindByID(ctx context.Context, id int64) (*models.Evaluation, error) {
	const query = `SELECT id, title, description, course_id, due_date, max_score, created_at FROM evaluations WHERE id = $1`
	var eval models.Evaluation
	if err := r.db.GetContext(ctx, &eval, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find evaluation by id: %w", err)
	}
	return &eval, nil
}

// Create persists a new evaluation and populates its id.
func (r *EvaluationRepository) Create(ctx context.Context, eval *models.Evaluation) error {
	if eval.CreatedAt.IsZero() {
		eval.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO evaluations (title, description, course_id, due_date, max_score, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		eval.Title, eval.Description, eval.CourseID, eval.DueDate, eval.MaxScore, eval.CreatedAt,
	).Scan(&eval.ID); err != nil {
		return fmt.Errorf("create evaluation: %w", err)
	}
	return nil
}

// CreateSubmission persists an ungraded submission and populates its id.
func (r *EvaluationRepository) CreateSubmission(ctx context.Context, sub *models.EvaluationSubmission) error {
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO evaluation_submissions (evaluation_id, student_id, content, submitted_at)
        VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		sub.EvaluationID, sub.StudentID, sub.Content, sub.SubmittedAt,
	).Scan(&sub.ID); err != nil {
		return fmt.Errorf("create evaluation submission: %w", err)
	}
	return nil
}

// FindSubmissionByID returns a submission by its ID.
func (r *EvaluationRepository) FindSubmissionByID(ctx context.Context, id int64) (*models.EvaluationSubmission, error) {
	const query = `SELECT id, evaluation_id, student_id, content, score, feedback, submitted_at, graded_at FROM evaluation_submissions WHERE id = $1`
	var sub models.EvaluationSubmission
	if err := r.db.GetContext(ctx, &sub, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find submission by id: %w", err)
	}
	return &sub, nil
}

// ListSubmissions returns an evaluation's submissions with student names.
func (r *EvaluationRepository) ListSubmissions(ctx context.Context, evaluationID int64) ([]models.SubmissionDetail, error) {
	const query = `SELECT s.id, s.evaluation_id, s.student_id, s.content, s.score, s.feedback, s.submitted_at, s.graded_at,
        COALESCE(u.name, 'Unknown') AS student_name
        FROM evaluation_submissions s
        LEFT JOIN users u ON u.id = s.student_id
        WHERE s.evaluation_id = $1 ORDER BY s.id`
	var subs []models.SubmissionDetail
	if err := r.db.SelectContext(ctx, &subs, query, evaluationID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// Grade sets score, feedback and graded_at in one update, overwriting any
// prior grade.
func (r *EvaluationRepository) Grade(ctx context.Context, id int64, score float64, feedback string, gradedAt time.Time) error {
	const query = `UPDATE evaluation_submissions SET score = $2, feedback = $3, graded_at = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, score, feedback, gradedAt); err != nil {
		return fmt.Errorf("grade submission: %w", err)
	}
	return nil
}

// CountSubmissions returns how many of the given evaluations the student
// has handed in.
func (r *EvaluationRepository) CountSubmissions(ctx context.Context, studentID int64, evaluationIDs []int64) (int, error) {
	if len(evaluationIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM evaluation_submissions WHERE student_id = ? AND evaluation_id IN (?)`, studentID, evaluationIDs)
	if err != nil {
		return 0, fmt.Errorf("build submission count query: %w", err)
	}
	query = r.db.Rebind(query)
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}
