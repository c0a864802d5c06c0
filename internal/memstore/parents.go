package memstore

import (
	"context"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ParentStore provides parent link access over the in-memory store.
type ParentStore struct {
	s *Store
}

// Exists reports whether the parent is already linked to the student.
func (p *ParentStore) Exists(ctx context.Context, parentID, studentID int64) (bool, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, link := range p.s.links {
		if link.ParentID == parentID && link.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// Create stores a new parent-student link.
func (p *ParentStore) Create(ctx context.Context, link models.ParentStudentLink) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.links = append(p.s.links, link)
	return nil
}

// ListByParent returns the parent's links in insertion order.
func (p *ParentStore) ListByParent(ctx context.Context, parentID int64) ([]models.ParentStudentLink, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	links := make([]models.ParentStudentLink, 0)
	for _, link := range p.s.links {
		if link.ParentID == parentID {
			links = append(links, link)
		}
	}
	return links, nil
}
