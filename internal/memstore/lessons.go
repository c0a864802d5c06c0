package memstore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// LessonStore provides lesson access over the in-memory store.
type LessonStore struct {
	s *Store
}

// ListByCourse returns the course's lessons ordered by position, then id.
func (l *LessonStore) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	lessons := make([]models.Lesson, 0)
	for _, lesson := range l.s.lessons {
		if lesson.CourseID == courseID {
			lessons = append(lessons, lesson)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return lessons[i].ID < lessons[j].ID
	})
	return lessons, nil
}

// FindByID returns a lesson by identifier.
func (l *LessonStore) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	for i := range l.s.lessons {
		if l.s.lessons[i].ID == id {
			lesson := l.s.lessons[i]
			return &lesson, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Create stores a new lesson and populates its id.
func (l *LessonStore) Create(ctx context.Context, lesson *models.Lesson) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = time.Now().UTC()
	}
	lesson.ID = l.s.nextID("lesson")
	l.s.lessons = append(l.s.lessons, *lesson)
	return nil
}

// Update replaces the editable lesson fields.
func (l *LessonStore) Update(ctx context.Context, id int64, title string, kind models.LessonKind, content string, order int) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for i := range l.s.lessons {
		if l.s.lessons[i].ID == id {
			l.s.lessons[i].Title = title
			l.s.lessons[i].Kind = kind
			l.s.lessons[i].Content = content
			l.s.lessons[i].Order = order
			return nil
		}
	}
	return nil
}

// Delete removes a lesson together with its completions and quiz results.
func (l *LessonStore) Delete(ctx context.Context, id int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for i := range l.s.lessons {
		if l.s.lessons[i].ID != id {
			continue
		}
		l.s.lessons = append(l.s.lessons[:i], l.s.lessons[i+1:]...)

		completions := l.s.completions[:0]
		for _, comp := range l.s.completions {
			if comp.LessonID != id {
				completions = append(completions, comp)
			}
		}
		l.s.completions = completions

		results := l.s.quizResults[:0]
		for _, res := range l.s.quizResults {
			if res.LessonID != id {
				results = append(results, res)
			}
		}
		l.s.quizResults = results
		return nil
	}
	return nil
}

// MarkCompleted records the completion marker. Repeat calls for the same
// (student, lesson) pair are no-ops.
func (l *LessonStore) MarkCompleted(ctx context.Context, studentID, lessonID int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.markCompletedLocked(studentID, lessonID)
	return nil
}

// markCompletedLocked inserts the marker unless present. Callers must hold
// the write lock.
func (s *Store) markCompletedLocked(studentID, lessonID int64) {
	for _, comp := range s.completions {
		if comp.StudentID == studentID && comp.LessonID == lessonID {
			return
		}
	}
	s.completions = append(s.completions, models.LessonCompletion{
		StudentID:   studentID,
		LessonID:    lessonID,
		CompletedAt: time.Now().UTC(),
	})
}

// CountCompleted returns how many of the given lessons the student finished.
func (l *LessonStore) CountCompleted(ctx context.Context, studentID int64, lessonIDs []int64) (int, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	wanted := make(map[int64]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		wanted[id] = true
	}
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	count := 0
	for _, comp := range l.s.completions {
		if comp.StudentID == studentID && wanted[comp.LessonID] {
			count++
		}
	}
	return count, nil
}
