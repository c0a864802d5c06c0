package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// QuizRepository handles persistence of quiz results.
type QuizRepository struct {
	db *sqlx.DB
}

// NewQuizRepository constructs the repository.
func NewQuizRepository(db *sqlx.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// RecordSubmission stores a graded attempt and the completion marker for its
// lesson in one transaction.
func (r *QuizRepository) RecordSubmission(ctx context.Context, result *models.QuizResult) error {
	if result.SubmittedAt.IsZero() {
		result.SubmittedAt = time.Now().UTC()
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin quiz submission: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertResult = `INSERT INTO quiz_results (lesson_id, student_id, score, total_questions, correct_answers, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := tx.QueryRowxContext(ctx, insertResult,
		result.LessonID, result.StudentID, result.Score, result.TotalQuestions, result.CorrectAnswers, result.SubmittedAt,
	).Scan(&result.ID); err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}

	const insertCompletion = `INSERT INTO lesson_completions (student_id, lesson_id, completed_at)
        VALUES ($1, $2, $3) ON CONFLICT (student_id, lesson_id) DO NOTHING`
	if _, err := tx.ExecContext(ctx, insertCompletion, result.StudentID, result.LessonID, result.SubmittedAt); err != nil {
		return fmt.Errorf("insert quiz completion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quiz submission: %w", err)
	}
	return nil
}

// ListByStudent returns all attempts recorded for a student.
func (r *QuizRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.QuizResult, error) {
	const query = `SELECT id, lesson_id, student_id, score, total_questions, correct_answers, submitted_at FROM quiz_results WHERE student_id = $1 ORDER BY id`
	var results []models.QuizResult
	if err := r.db.SelectContext(ctx, &results, query, studentID); err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	return results, nil
}

// ListByStudentAndLessons restricts attempts to the given lesson ids.
func (r *QuizRepository) ListByStudentAndLessons(ctx context.Context, studentID int64, lessonIDs []int64) ([]models.QuizResult, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, lesson_id, student_id, score, total_questions, correct_answers, submitted_at
        FROM quiz_results WHERE student_id = ? AND lesson_id IN (?) ORDER BY id`, studentID, lessonIDs)
	if err != nil {
		return nil, fmt.Errorf("build quiz result query: %w", err)
	}
	query = r.db.Rebind(query)
	var results []models.QuizResult
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("list quiz results by lessons: %w", err)
	}
	return results, nil
}
