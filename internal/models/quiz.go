package models

import "time"

// QuizQuestion is one entry of a quiz lesson's content payload.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// QuizSubmission carries the selected option index per question.
type QuizSubmission struct {
	LessonID int64 `json:"lesson_id" validate:"required"`
	Answers  []int `json:"answers"`
}

// QuizResult records one graded attempt. Unlike completions, multiple
// results per (student, lesson) are permitted.
type QuizResult struct {
	ID             int64     `db:"id" json:"id"`
	LessonID       int64     `db:"lesson_id" json:"lesson_id"`
	StudentID      int64     `db:"student_id" json:"student_id"`
	Score          float64   `db:"score" json:"score"`
	TotalQuestions int       `db:"total_questions" json:"total_questions"`
	CorrectAnswers int       `db:"correct_answers" json:"correct_answers"`
	SubmittedAt    time.Time `db:"submitted_at" json:"submitted_at"`
}
