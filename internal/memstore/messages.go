package memstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// MessageStore provides message access over the in-memory store.
type MessageStore struct {
	s *Store
}

// Create stores a new message and populates its id.
func (m *MessageStore) Create(ctx context.Context, msg *models.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	msg.ID = m.s.nextID("message")
	m.s.messages = append(m.s.messages, *msg)
	return nil
}

// FindByID returns a message by identifier.
func (m *MessageStore) FindByID(ctx context.Context, id int64) (*models.Message, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for i := range m.s.messages {
		if m.s.messages[i].ID == id {
			msg := m.s.messages[i]
			return &msg, nil
		}
	}
	return nil, sql.ErrNoRows
}

// ListBetween returns the two-way thread between the users in send order,
// with display names inlined.
func (m *MessageStore) ListBetween(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	thread := make([]models.MessageDetail, 0)
	for _, msg := range m.s.messages {
		if (msg.SenderID == userID && msg.ReceiverID == otherID) ||
			(msg.SenderID == otherID && msg.ReceiverID == userID) {
			thread = append(thread, models.MessageDetail{
				Message:      msg,
				SenderName:   m.s.userName(msg.SenderID),
				ReceiverName: m.s.userName(msg.ReceiverID),
			})
		}
	}
	return thread, nil
}

// ListByUser returns every message the user sent or received in send order.
func (m *MessageStore) ListByUser(ctx context.Context, userID int64) ([]models.Message, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	messages := make([]models.Message, 0)
	for _, msg := range m.s.messages {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

// MarkRead flags one message as read.
func (m *MessageStore) MarkRead(ctx context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range m.s.messages {
		if m.s.messages[i].ID == id {
			m.s.messages[i].Read = true
			return nil
		}
	}
	return nil
}

// MarkAllRead flags every message from otherID to userID as read.
func (m *MessageStore) MarkAllRead(ctx context.Context, userID, otherID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range m.s.messages {
		if m.s.messages[i].ReceiverID == userID && m.s.messages[i].SenderID == otherID {
			m.s.messages[i].Read = true
		}
	}
	return nil
}
