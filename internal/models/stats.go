package models

import "time"

// Statistics is a platform-wide count snapshot.
type Statistics struct {
	TotalUsers       int       `json:"total_users"`
	TotalStudents    int       `json:"total_students"`
	TotalTeachers    int       `json:"total_teachers"`
	TotalParents     int       `json:"total_parents"`
	TotalCourses     int       `json:"total_courses"`
	PublishedCourses int       `json:"published_courses"`
	TotalEnrollments int       `json:"total_enrollments"`
	TotalLessons     int       `json:"total_lessons"`
	TotalEvaluations int       `json:"total_evaluations"`
	GeneratedAt      time.Time `json:"generated_at"`
}
