package models

import "time"

// LessonKind determines how the content payload is interpreted: a URL for
// video, markup for text, a JSON question list for quiz.
type LessonKind string

const (
	LessonVideo LessonKind = "video"
	LessonText  LessonKind = "text"
	LessonQuiz  LessonKind = "quiz"
)

// Valid reports whether the kind is one of the known values.
func (k LessonKind) Valid() bool {
	switch k {
	case LessonVideo, LessonText, LessonQuiz:
		return true
	}
	return false
}

// Lesson represents a single lesson within a course.
type Lesson struct {
	ID        int64      `db:"id" json:"id"`
	CourseID  int64      `db:"course_id" json:"course_id"`
	Title     string     `db:"title" json:"title"`
	Kind      LessonKind `db:"lesson_type" json:"lesson_type"`
	Content   string     `db:"content" json:"content"`
	Order     int        `db:"position" json:"order"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// LessonCompletion is an idempotent marker: at most one per (student, lesson).
type LessonCompletion struct {
	StudentID   int64     `db:"student_id" json:"student_id"`
	LessonID    int64     `db:"lesson_id" json:"lesson_id"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}

// LessonRequest is the create payload for lessons; updates reuse it minus
// the course reference.
type LessonRequest struct {
	CourseID int64      `json:"course_id" validate:"required"`
	Title    string     `json:"title" validate:"required"`
	Kind     LessonKind `json:"lesson_type" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	Order    int        `json:"order"`
}
