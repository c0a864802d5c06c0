package memstore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// ApplicationStore provides student application access over the in-memory
// store.
type ApplicationStore struct {
	s *Store
}

// List returns applications newest-first; an empty status means all.
func (a *ApplicationStore) List(ctx context.Context, status models.ApplicationStatus) ([]models.StudentApplication, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	apps := make([]models.StudentApplication, 0, len(a.s.applications))
	for _, app := range a.s.applications {
		if status != "" && app.Status != status {
			continue
		}
		apps = append(apps, app)
	}
	sort.SliceStable(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		}
		return apps[i].ID > apps[j].ID
	})
	return apps, nil
}

// FindByID returns an application by identifier.
func (a *ApplicationStore) FindByID(ctx context.Context, id int64) (*models.StudentApplication, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	for i := range a.s.applications {
		if a.s.applications[i].ID == id {
			app := a.s.applications[i]
			return &app, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Create stores a new application and populates its id.
func (a *ApplicationStore) Create(ctx context.Context, app *models.StudentApplication) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	app.ID = a.s.nextID("application")
	a.s.applications = append(a.s.applications, *app)
	return nil
}

// Review sets the status and reviewer fields.
func (a *ApplicationStore) Review(ctx context.Context, id int64, status models.ApplicationStatus, reviewedBy int64, reviewedAt time.Time) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for i := range a.s.applications {
		if a.s.applications[i].ID == id {
			a.s.applications[i].Status = status
			a.s.applications[i].ReviewedBy = &reviewedBy
			a.s.applications[i].ReviewedAt = &reviewedAt
			return nil
		}
	}
	return nil
}

// Delete removes an application record.
func (a *ApplicationStore) Delete(ctx context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for i := range a.s.applications {
		if a.s.applications[i].ID == id {
			a.s.applications = append(a.s.applications[:i], a.s.applications[i+1:]...)
			return nil
		}
	}
	return nil
}
