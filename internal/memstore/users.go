package memstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// UserStore provides user access over the in-memory store.
type UserStore struct {
	s *Store
}

// Create stores a new user and populates its id.
func (u *UserStore) Create(ctx context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.ID = u.s.nextID("user")
	u.s.users = append(u.s.users, *user)
	return nil
}

// FindByEmail returns a user by email address.
func (u *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].Email == email {
			user := u.s.users[i]
			return &user, nil
		}
	}
	return nil, sql.ErrNoRows
}

// FindByID returns a user by identifier.
func (u *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			user := u.s.users[i]
			return &user, nil
		}
	}
	return nil, sql.ErrNoRows
}

// List returns users matching the filter, in insertion order.
func (u *UserStore) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	users := make([]models.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.GradeLevel != "" && (user.GradeLevel == nil || *user.GradeLevel != filter.GradeLevel) {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateGrade replaces the user's grade level.
func (u *UserStore) UpdateGrade(ctx context.Context, id int64, gradeLevel *string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			u.s.users[i].GradeLevel = gradeLevel
			return nil
		}
	}
	return nil
}

// Delete removes a user record.
func (u *UserStore) Delete(ctx context.Context, id int64) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			u.s.users = append(u.s.users[:i], u.s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// userName resolves a display name; callers must hold at least a read lock.
func (s *Store) userName(id int64) string {
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i].Name
		}
	}
	return "Unknown"
}

// userRole resolves a role; callers must hold at least a read lock.
func (s *Store) userRole(id int64) models.UserRole {
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i].Role
		}
	}
	return ""
}
