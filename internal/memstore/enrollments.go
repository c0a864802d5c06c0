package memstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// EnrollmentStore provides enrollment access over the in-memory store.
type EnrollmentStore struct {
	s *Store
}

// List returns enrollments matching the filter, in insertion order.
func (e *EnrollmentStore) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	enrollments := make([]models.Enrollment, 0, len(e.s.enrollments))
	for _, enr := range e.s.enrollments {
		if filter.StudentID != 0 && enr.StudentID != filter.StudentID {
			continue
		}
		if filter.CourseID != 0 && enr.CourseID != filter.CourseID {
			continue
		}
		enrollments = append(enrollments, enr)
	}
	return enrollments, nil
}

// FindByID returns an enrollment by identifier.
func (e *EnrollmentStore) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	for i := range e.s.enrollments {
		if e.s.enrollments[i].ID == id {
			enr := e.s.enrollments[i]
			return &enr, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Exists reports whether the student is already enrolled in the course.
func (e *EnrollmentStore) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	for _, enr := range e.s.enrollments {
		if enr.StudentID == studentID && enr.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// Create stores a new enrollment and populates its id.
func (e *EnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	enrollment.ID = e.s.nextID("enrollment")
	e.s.enrollments = append(e.s.enrollments, *enrollment)
	return nil
}

// Delete removes an enrollment record.
func (e *EnrollmentStore) Delete(ctx context.Context, id int64) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	for i := range e.s.enrollments {
		if e.s.enrollments[i].ID == id {
			e.s.enrollments = append(e.s.enrollments[:i], e.s.enrollments[i+1:]...)
			return nil
		}
	}
	return nil
}
