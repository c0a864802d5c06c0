package memstore

import (
	"context"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// StatsStore computes platform statistics over the in-memory store.
type StatsStore struct {
	s *Store
}

// Counts tallies the platform-wide entity counts.
func (st *StatsStore) Counts(ctx context.Context) (*models.Statistics, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	stats := &models.Statistics{
		TotalUsers:       len(st.s.users),
		TotalCourses:     len(st.s.courses),
		TotalEnrollments: len(st.s.enrollments),
		TotalLessons:     len(st.s.lessons),
		TotalEvaluations: len(st.s.evaluations),
		GeneratedAt:      time.Now().UTC(),
	}
	for _, u := range st.s.users {
		switch u.Role {
		case models.RoleStudent:
			stats.TotalStudents++
		case models.RoleTeacher:
			stats.TotalTeachers++
		case models.RoleParent:
			stats.TotalParents++
		}
	}
	for _, c := range st.s.courses {
		if c.Published {
			stats.PublishedCourses++
		}
	}
	return stats, nil
}
