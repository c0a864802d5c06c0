package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// MessageHandler exposes direct messaging endpoints.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler constructs the message handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Send stores a new message from the sender named in the query string.
func (h *MessageHandler) Send(c *gin.Context) {
	senderID, err := parseIDQuery(c, "sender_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.MessageRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	msg, err := h.messages.Send(c.Request.Context(), senderID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// Thread returns the conversation between two users in send order. The
// path id names the counterparty.
func (h *MessageHandler) Thread(c *gin.Context) {
	otherID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := parseIDQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	thread, err := h.messages.Thread(c.Request.Context(), userID, otherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, thread)
}

// MarkRead flags one message as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.messages.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "marked as read"})
}

// MarkAllRead flags every message from the counterparty as read.
func (h *MessageHandler) MarkAllRead(c *gin.Context) {
	userID, err := parseIDQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	otherID, err := parseIDQuery(c, "other_user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.messages.MarkAllRead(c.Request.Context(), userID, otherID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "marked as read"})
}

// Contacts returns the users the account may message.
func (h *MessageHandler) Contacts(c *gin.Context) {
	userID, err := parseIDQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	contacts, err := h.messages.Contacts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contacts)
}

// Conversations returns the user's conversation summaries, newest first.
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, err := parseIDQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	conversations, err := h.messages.Conversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conversations)
}
