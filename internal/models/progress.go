package models

// StudentProgress summarises one student's standing in one enrolled course.
// AverageQuizScore is nil when the student has no quiz results for the
// course, never zero.
type StudentProgress struct {
	StudentID            int64    `json:"student_id"`
	StudentName          string   `json:"student_name"`
	CourseID             int64    `json:"course_id"`
	CourseTitle          string   `json:"course_title"`
	CompletedLessons     int      `json:"completed_lessons"`
	TotalLessons         int      `json:"total_lessons"`
	AverageQuizScore     *float64 `json:"average_quiz_score,omitempty"`
	EvaluationsCompleted int      `json:"evaluations_completed"`
	TotalEvaluations     int      `json:"total_evaluations"`
}
