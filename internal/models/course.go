package models

import "time"

// Course represents a course owned by a teaching-capable user.
type Course struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	GradeLevel   *string   `db:"grade_level" json:"grade_level,omitempty"`
	TeacherID    int64     `db:"teacher_id" json:"teacher_id"`
	Published    bool      `db:"is_published" json:"is_published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CourseDetail is a course with the owning teacher's display name inlined.
type CourseDetail struct {
	Course
	TeacherName string `db:"teacher_name" json:"teacher_name"`
}

// CourseFilter captures filtering criteria for listing courses.
type CourseFilter struct {
	TeacherID     int64
	PublishedOnly bool
}

// CourseRequest is the create/update payload for courses.
type CourseRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	GradeLevel   *string `json:"grade_level,omitempty"`
}
