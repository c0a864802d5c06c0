package models

// ParentStudentLink ties a parent account to a student account. The pair is
// unique and both role preconditions are checked on creation.
type ParentStudentLink struct {
	ParentID  int64 `db:"parent_id" json:"parent_id" validate:"required"`
	StudentID int64 `db:"student_id" json:"student_id" validate:"required"`
}

// ChildProgress bundles a linked student with their per-course progress.
type ChildProgress struct {
	Student User              `json:"student"`
	Courses []StudentProgress `json:"courses"`
}
