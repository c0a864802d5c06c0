package models

import "time"

// ApplicationStatus tracks the review state of a student application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// StudentApplication is an enrollment application submitted by a parent or
// guardian. Review records reviewer id and timestamp; already-reviewed
// applications may be re-reviewed.
type StudentApplication struct {
	ID          int64             `db:"id" json:"id"`
	StudentName string            `db:"student_name" json:"student_name"`
	StudentAge  int               `db:"student_age" json:"student_age"`
	GradeLevel  string            `db:"grade_level" json:"grade_level"`
	ParentName  string            `db:"parent_name" json:"parent_name"`
	ParentEmail string            `db:"parent_email" json:"parent_email"`
	ParentPhone string            `db:"parent_phone" json:"parent_phone"`
	Address     string            `db:"address" json:"address"`
	Message     string            `db:"message" json:"message"`
	Status      ApplicationStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	ReviewedAt  *time.Time        `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy  *int64            `db:"reviewed_by" json:"reviewed_by,omitempty"`
}

// ApplicationRequest is the create payload for student applications.
type ApplicationRequest struct {
	StudentName string `json:"student_name" validate:"required"`
	StudentAge  int    `json:"student_age" validate:"required,min=3"`
	GradeLevel  string `json:"grade_level" validate:"required"`
	ParentName  string `json:"parent_name" validate:"required"`
	ParentEmail string `json:"parent_email" validate:"required,email"`
	ParentPhone string `json:"parent_phone"`
	Address     string `json:"address"`
	Message     string `json:"message"`
}
