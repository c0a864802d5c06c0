// Package memstore is the in-memory storage backend. It mirrors the method
// sets of internal/repository so the service layer can run without a
// database: ids are monotonic per entity type and listings preserve
// insertion order. Not-found is reported as sql.ErrNoRows to keep the
// service layer backend-agnostic.
package memstore

import (
	"sync"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// Store holds every collection behind a single mutex. The lock guards map
// and slice integrity only; requests still race with last-write-wins
// semantics, same as the database backend.
type Store struct {
	mu  sync.RWMutex
	seq map[string]int64

	users        []models.User
	courses      []models.Course
	lessons      []models.Lesson
	completions  []models.LessonCompletion
	quizResults  []models.QuizResult
	evaluations  []models.Evaluation
	submissions  []models.EvaluationSubmission
	events       []models.CalendarEvent
	enrollments  []models.Enrollment
	links        []models.ParentStudentLink
	messages     []models.Message
	applications []models.StudentApplication
	content      map[string]models.SiteContent
}

// New returns an empty store.
func New() *Store {
	return &Store{
		seq:     make(map[string]int64),
		content: make(map[string]models.SiteContent),
	}
}

// nextID issues the next id for an entity type. Callers must hold the write
// lock.
func (s *Store) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

// Users returns the user accessor.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// Courses returns the course accessor.
func (s *Store) Courses() *CourseStore { return &CourseStore{s: s} }

// Lessons returns the lesson accessor.
func (s *Store) Lessons() *LessonStore { return &LessonStore{s: s} }

// Quizzes returns the quiz result accessor.
func (s *Store) Quizzes() *QuizStore { return &QuizStore{s: s} }

// Evaluations returns the evaluation accessor.
func (s *Store) Evaluations() *EvaluationStore { return &EvaluationStore{s: s} }

// Calendar returns the calendar event accessor.
func (s *Store) Calendar() *CalendarStore { return &CalendarStore{s: s} }

// Enrollments returns the enrollment accessor.
func (s *Store) Enrollments() *EnrollmentStore { return &EnrollmentStore{s: s} }

// Parents returns the parent link accessor.
func (s *Store) Parents() *ParentStore { return &ParentStore{s: s} }

// Messages returns the message accessor.
func (s *Store) Messages() *MessageStore { return &MessageStore{s: s} }

// Applications returns the application accessor.
func (s *Store) Applications() *ApplicationStore { return &ApplicationStore{s: s} }

// Content returns the site content accessor.
func (s *Store) Content() *ContentStore { return &ContentStore{s: s} }

// Stats returns the statistics accessor.
func (s *Store) Stats() *StatsStore { return &StatsStore{s: s} }
