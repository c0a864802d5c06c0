package memstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ContentStore provides site content access over the in-memory store.
type ContentStore struct {
	s *Store
}

// Find returns a stored section payload.
func (c *ContentStore) Find(ctx context.Context, section string) (*models.SiteContent, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	if stored, ok := c.s.content[section]; ok {
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

// ListStored returns every section that has been written.
func (c *ContentStore) ListStored(ctx context.Context) ([]models.SiteContent, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	stored := make([]models.SiteContent, 0, len(c.s.content))
	for _, sc := range c.s.content {
		stored = append(stored, sc)
	}
	return stored, nil
}

// Upsert writes a section payload, replacing any previous value.
func (c *ContentStore) Upsert(ctx context.Context, section string, content json.RawMessage, updatedAt time.Time) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.content[section] = models.SiteContent{Section: section, Content: content, UpdatedAt: updatedAt}
	return nil
}
