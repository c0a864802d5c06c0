package memstore

import (
	"context"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// QuizStore provides quiz result access over the in-memory store.
type QuizStore struct {
	s *Store
}

// RecordSubmission stores a graded attempt and the completion marker for its
// lesson under a single lock acquisition, so both land together.
func (q *QuizStore) RecordSubmission(ctx context.Context, result *models.QuizResult) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	if result.SubmittedAt.IsZero() {
		result.SubmittedAt = time.Now().UTC()
	}
	result.ID = q.s.nextID("quiz_result")
	q.s.quizResults = append(q.s.quizResults, *result)
	q.s.markCompletedLocked(result.StudentID, result.LessonID)
	return nil
}

// ListByStudent returns all of a student's results in insertion order.
func (q *QuizStore) ListByStudent(ctx context.Context, studentID int64) ([]models.QuizResult, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	results := make([]models.QuizResult, 0)
	for _, res := range q.s.quizResults {
		if res.StudentID == studentID {
			results = append(results, res)
		}
	}
	return results, nil
}

// ListByStudentAndLessons returns the student's results for the given lessons.
func (q *QuizStore) ListByStudentAndLessons(ctx context.Context, studentID int64, lessonIDs []int64) ([]models.QuizResult, error) {
	if len(lessonIDs) == 0 {
		return []models.QuizResult{}, nil
	}
	wanted := make(map[int64]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		wanted[id] = true
	}
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	results := make([]models.QuizResult, 0)
	for _, res := range q.s.quizResults {
		if res.StudentID == studentID && wanted[res.LessonID] {
			results = append(results, res)
		}
	}
	return results, nil
}
