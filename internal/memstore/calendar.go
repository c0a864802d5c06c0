package memstore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// CalendarStore provides calendar event access over the in-memory store.
type CalendarStore struct {
	s *Store
}

// List returns events matching the filter ordered by start time.
func (c *CalendarStore) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	events := make([]models.CalendarEvent, 0, len(c.s.events))
	for _, ev := range c.s.events {
		if filter.CourseID != 0 && (ev.CourseID == nil || *ev.CourseID != filter.CourseID) {
			continue
		}
		if filter.StartDate != nil && ev.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && ev.EndTime.After(*filter.EndDate) {
			continue
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

// FindByID returns an event by identifier.
func (c *CalendarStore) FindByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.events {
		if c.s.events[i].ID == id {
			event := c.s.events[i]
			return &event, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Create stores a new event and populates its id.
func (c *CalendarStore) Create(ctx context.Context, event *models.CalendarEvent) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.ID = c.s.nextID("calendar_event")
	c.s.events = append(c.s.events, *event)
	return nil
}

// Delete removes an event record.
func (c *CalendarStore) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.events {
		if c.s.events[i].ID == id {
			c.s.events = append(c.s.events[:i], c.s.events[i+1:]...)
			return nil
		}
	}
	return nil
}
