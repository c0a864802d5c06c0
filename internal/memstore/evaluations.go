package memstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// EvaluationStore provides evaluation access over the in-memory store.
type EvaluationStore struct {
	s *Store
}

// List returns evaluations in insertion order; courseID zero means all.
func (e *EvaluationStore) List(ctx context.Context, courseID int64) ([]models.Evaluation, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	evals := make([]models.Evaluation, 0, len(e.s.evaluations))
	for _, ev := range e.s.evaluations {
		if courseID != 0 && ev.CourseID != courseID {
			continue
		}
		evals = append(evals, ev)
	}
	return evals, nil
}

// FindByID returns an evaluation by identifier.
func (e *EvaluationStore) FindByID(ctx context.Context, id int64) (*models.Evaluation, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	for i := range e.s.evaluations {
		if e.s.evaluations[i].ID == id {
			eval := e.s.evaluations[i]
			return &eval, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Create stores a new evaluation and populates its id.
func (e *EvaluationStore) Create(ctx context.Context, eval *models.Evaluation) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if eval.CreatedAt.IsZero() {
		eval.CreatedAt = time.Now().UTC()
	}
	eval.ID = e.s.nextID("evaluation")
	e.s.evaluations = append(e.s.evaluations, *eval)
	return nil
}

// CreateSubmission stores a new submission and populates its id.
func (e *EvaluationStore) CreateSubmission(ctx context.Context, sub *models.EvaluationSubmission) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	sub.ID = e.s.nextID("evaluation_submission")
	e.s.submissions = append(e.s.submissions, *sub)
	return nil
}

// FindSubmissionByID returns a submission by identifier.
func (e *EvaluationStore) FindSubmissionByID(ctx context.Context, id int64) (*models.EvaluationSubmission, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	for i := range e.s.submissions {
		if e.s.submissions[i].ID == id {
			sub := e.s.submissions[i]
			return &sub, nil
		}
	}
	return nil, sql.ErrNoRows
}

// ListSubmissions returns an evaluation's submissions with student names.
func (e *EvaluationStore) ListSubmissions(ctx context.Context, evaluationID int64) ([]models.SubmissionDetail, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	details := make([]models.SubmissionDetail, 0)
	for _, sub := range e.s.submissions {
		if sub.EvaluationID == evaluationID {
			details = append(details, models.SubmissionDetail{
				EvaluationSubmission: sub,
				StudentName:          e.s.userName(sub.StudentID),
			})
		}
	}
	return details, nil
}

// Grade sets score, feedback and the grading timestamp on a submission.
func (e *EvaluationStore) Grade(ctx context.Context, id int64, score float64, feedback string, gradedAt time.Time) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	for i := range e.s.submissions {
		if e.s.submissions[i].ID == id {
			e.s.submissions[i].Score = &score
			e.s.submissions[i].Feedback = &feedback
			e.s.submissions[i].GradedAt = &gradedAt
			return nil
		}
	}
	return nil
}

// CountSubmissions returns how many of the given evaluations the student
// handed in.
func (e *EvaluationStore) CountSubmissions(ctx context.Context, studentID int64, evaluationIDs []int64) (int, error) {
	if len(evaluationIDs) == 0 {
		return 0, nil
	}
	wanted := make(map[int64]bool, len(evaluationIDs))
	for _, id := range evaluationIDs {
		wanted[id] = true
	}
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	count := 0
	for _, sub := range e.s.submissions {
		if sub.StudentID == studentID && wanted[sub.EvaluationID] {
			count++
		}
	}
	return count, nil
}
