package models

import "time"

// Enrollment links a student to a course. The (student, course) pair is unique.
type Enrollment struct {
	ID         int64     `db:"id" json:"id"`
	StudentID  int64     `db:"student_id" json:"student_id"`
	CourseID   int64     `db:"course_id" json:"course_id"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolled_at"`
}

// EnrollmentFilter captures filtering criteria for listing enrollments.
type EnrollmentFilter struct {
	StudentID int64
	CourseID  int64
}

// EnrollmentRequest is the create payload for enrollments.
type EnrollmentRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
	CourseID  int64 `json:"course_id" validate:"required"`
}
