package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type messageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	FindByID(ctx context.Context, id int64) (*models.Message, error)
	ListBetween(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID, otherID int64) error
}

type messageUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// MessageService handles direct messaging use-cases.
type MessageService struct {
	messages  messageRepository
	users     messageUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs the message service.
func NewMessageService(messages messageRepository, users messageUserRepository, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{messages: messages, users: users, validator: validate, logger: logger}
}

// Send stores a new unread message between two existing users.
func (s *MessageService) Send(ctx context.Context, senderID int64, req models.MessageRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}
	if _, err := s.findUser(ctx, senderID, "sender"); err != nil {
		return nil, err
	}
	if _, err := s.findUser(ctx, req.ReceiverID, "receiver"); err != nil {
		return nil, err
	}
	msg := &models.Message{SenderID: senderID, ReceiverID: req.ReceiverID, Content: req.Content, Read: false}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create message")
	}
	return msg, nil
}

// Thread returns the two-way conversation between two users in send order.
func (s *MessageService) Thread(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error) {
	if _, err := s.findUser(ctx, userID, "user"); err != nil {
		return nil, err
	}
	if _, err := s.findUser(ctx, otherID, "user"); err != nil {
		return nil, err
	}
	thread, err := s.messages.ListBetween(ctx, userID, otherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return thread, nil
}

// MarkRead flags one message as read.
func (s *MessageService) MarkRead(ctx context.Context, id int64) error {
	if _, err := s.messages.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load message")
	}
	if err := s.messages.MarkRead(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark message read")
	}
	return nil
}

// MarkAllRead flags every message received from the counterparty as read.
func (s *MessageService) MarkAllRead(ctx context.Context, userID, otherID int64) error {
	if err := s.messages.MarkAllRead(ctx, userID, otherID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark messages read")
	}
	return nil
}

// Contacts returns the users the given account may message. Students and
// parents reach teaching staff; staff reach everyone else.
func (s *MessageService) Contacts(ctx context.Context, userID int64) ([]models.User, error) {
	user, err := s.findUser(ctx, userID, "user")
	if err != nil {
		return nil, err
	}
	all, err := s.users.List(ctx, models.UserFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	contacts := make([]models.User, 0, len(all))
	for _, candidate := range all {
		if candidate.ID == userID {
			continue
		}
		switch user.Role {
		case models.RoleStudent, models.RoleParent:
			if candidate.Role == models.RoleTeacher || candidate.Role == models.RoleDirector {
				contacts = append(contacts, candidate)
			}
		default:
			contacts = append(contacts, candidate)
		}
	}
	return contacts, nil
}

// Conversations groups the user's messages by counterparty: the latest
// message per counterparty plus the count of unread messages received from
// them, sorted by latest message time descending. Equal times fall back to
// ascending counterparty id.
func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	if _, err := s.findUser(ctx, userID, "user"); err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}

	byCounterparty := make(map[int64]*models.Conversation)
	for _, msg := range messages {
		otherID := msg.SenderID
		if msg.SenderID == userID {
			otherID = msg.ReceiverID
		}
		conv, ok := byCounterparty[otherID]
		if !ok {
			conv = &models.Conversation{UserID: otherID}
			byCounterparty[otherID] = conv
		}
		if msg.CreatedAt.After(conv.LastMessageTime) {
			conv.LastMessage = msg.Content
			conv.LastMessageTime = msg.CreatedAt
		}
		if msg.ReceiverID == userID && !msg.Read {
			conv.UnreadCount++
		}
	}

	conversations := make([]models.Conversation, 0, len(byCounterparty))
	for otherID, conv := range byCounterparty {
		other, err := s.users.FindByID(ctx, otherID)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load counterparty")
		}
		conv.UserName = other.Name
		conv.UserRole = other.Role
		conversations = append(conversations, *conv)
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		if !conversations[i].LastMessageTime.Equal(conversations[j].LastMessageTime) {
			return conversations[i].LastMessageTime.After(conversations[j].LastMessageTime)
		}
		return conversations[i].UserID < conversations[j].UserID
	})
	return conversations, nil
}

func (s *MessageService) findUser(ctx context.Context, id int64, label string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, label+" not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+label)
	}
	return user, nil
}
