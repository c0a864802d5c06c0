package models

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         int64     `db:"id" json:"id"`
	SenderID   int64     `db:"sender_id" json:"sender_id"`
	ReceiverID int64     `db:"receiver_id" json:"receiver_id"`
	Content    string    `db:"content" json:"content"`
	Read       bool      `db:"is_read" json:"is_read"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// MessageDetail is a message with both display names inlined.
type MessageDetail struct {
	Message
	SenderName   string `db:"sender_name" json:"sender_name"`
	ReceiverName string `db:"receiver_name" json:"receiver_name"`
}

// MessageRequest is the create payload for messages.
type MessageRequest struct {
	ReceiverID int64  `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// Conversation summarises the exchange with one counterparty: the latest
// message and the number of unread messages received from them.
type Conversation struct {
	UserID          int64     `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserRole        UserRole  `json:"user_role"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}
