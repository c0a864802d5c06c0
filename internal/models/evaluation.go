package models

import "time"

// Evaluation is a gradeable assignment attached to a course.
type Evaluation struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CourseID    int64     `db:"course_id" json:"course_id"`
	DueDate     time.Time `db:"due_date" json:"due_date"`
	MaxScore    float64   `db:"max_score" json:"max_score"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EvaluationRequest is the create payload for evaluations.
type EvaluationRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CourseID    int64     `json:"course_id" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	MaxScore    float64   `json:"max_score"`
}

// EvaluationSubmission is a student's answer to an evaluation. Score,
// feedback and graded timestamp stay null until a grading action occurs.
type EvaluationSubmission struct {
	ID           int64      `db:"id" json:"id"`
	EvaluationID int64      `db:"evaluation_id" json:"evaluation_id"`
	StudentID    int64      `db:"student_id" json:"student_id"`
	Content      string     `db:"content" json:"content"`
	Score        *float64   `db:"score" json:"score,omitempty"`
	Feedback     *string    `db:"feedback" json:"feedback,omitempty"`
	SubmittedAt  time.Time  `db:"submitted_at" json:"submitted_at"`
	GradedAt     *time.Time `db:"graded_at" json:"graded_at,omitempty"`
}

// SubmissionDetail is a submission with the student's display name inlined.
type SubmissionDetail struct {
	EvaluationSubmission
	StudentName string `db:"student_name" json:"student_name"`
}

// SubmitEvaluationRequest is the payload for handing in an evaluation.
type SubmitEvaluationRequest struct {
	EvaluationID int64  `json:"evaluation_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
}

// GradeRequest sets score, feedback and the grading timestamp in one update.
type GradeRequest struct {
	SubmissionID int64   `json:"submission_id" validate:"required"`
	Score        float64 `json:"score"`
	Feedback     string  `json:"feedback"`
}
