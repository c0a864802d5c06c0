package models

import "time"

// UserRole represents the available roles in the platform.
type UserRole string

const (
	RoleSuperuser UserRole = "superuser"
	RoleDirector  UserRole = "director"
	RoleTeacher   UserRole = "teacher"
	RoleStudent   UserRole = "student"
	RoleParent    UserRole = "parent"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperuser, RoleDirector, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// CanOwnCourse reports whether users with this role may create and own courses.
func (r UserRole) CanOwnCourse() bool {
	switch r {
	case RoleTeacher, RoleDirector, RoleSuperuser:
		return true
	}
	return false
}

// CanReviewApplications reports whether users with this role may review
// student applications.
func (r UserRole) CanReviewApplications() bool {
	return r == RoleSuperuser || r == RoleDirector
}

// User represents an application user stored in the users table.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         UserRole  `db:"role" json:"role"`
	GradeLevel   *string   `db:"grade_level" json:"grade_level,omitempty"`
	Active       bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role       *UserRole
	GradeLevel string
}
