package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/ninetd/ninetd/internal/errors"
	"github.com/ninetd/ninetd/internal/middleware"
	"github.com/ninetd/ninetd/internal/services"
)

// MessageHandler exposes direct messaging between users.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListMessages returns messages the user sent or received, newest first.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	messages, err := h.messageService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage stores a direct message from the authenticated user.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SendMessageRequest struct {
		RecipientID uint64 `json:"recipientId" binding:"required"`
		Body        string `json:"body" binding:"required"`
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.messageService.Send(userID, req.RecipientID, req.Body); err != nil {
		switch {
		case errors.Is(err, services.ErrBodyRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrRecipientNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to send message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
