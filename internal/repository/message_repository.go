package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// MessageRepository handles persistence of direct messages.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository constructs the repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create persists a new message and populates its id.
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO messages (sender_id, receiver_id, content, is_read, created_at)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.Read, msg.CreatedAt,
	).Scan(&msg.ID); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// FindByID returns a message by its ID.
func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*models.Message, error) {
	const query = `SELECT id, sender_id, receiver_id, content, is_read, created_at FROM messages WHERE id = $1`
	var msg models.Message
	if err := r.db.GetContext(ctx, &msg, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find message by id: %w", err)
	}
	return &msg, nil
}

// ListBetween returns the chronological thread between two users with names
// inlined.
func (r *MessageRepository) ListBetween(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error) {
	const query = `SELECT m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
        COALESCE(s.name, 'Unknown') AS sender_name, COALESCE(t.name, 'Unknown') AS receiver_name
        FROM messages m
        LEFT JOIN users s ON s.id = m.sender_id
        LEFT JOIN users t ON t.id = m.receiver_id
        WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
        ORDER BY m.created_at, m.id`
	var messages []models.MessageDetail
	if err := r.db.SelectContext(ctx, &messages, query, userID, otherID); err != nil {
		return nil, fmt.Errorf("list thread: %w", err)
	}
	return messages, nil
}

// ListByUser returns every message the user sent or received.
func (r *MessageRepository) ListByUser(ctx context.Context, userID int64) ([]models.Message, error) {
	const query = `SELECT id, sender_id, receiver_id, content, is_read, created_at FROM messages
        WHERE sender_id = $1 OR receiver_id = $1 ORDER BY id`
	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, query, userID); err != nil {
		return nil, fmt.Errorf("list user messages: %w", err)
	}
	return messages, nil
}

// MarkRead flips the read flag on one message.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	const query = `UPDATE messages SET is_read = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// MarkAllRead flips the read flag on every message from other to user.
func (r *MessageRepository) MarkAllRead(ctx context.Context, userID, otherID int64) error {
	const query = `UPDATE messages SET is_read = TRUE WHERE sender_id = $2 AND receiver_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID, otherID); err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}
