package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/ninetd/ninetd/internal/errors"
	"github.com/ninetd/ninetd/internal/middleware"
	"github.com/ninetd/ninetd/internal/services"
)

// LogHandler exposes the server-side audit log.
type LogHandler struct {
	auditService *services.AuditService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(auditService *services.AuditService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// ListLogs returns the authenticated user's audit entries, newest first.
func (h *LogHandler) ListLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	entries, err := h.auditService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch logs")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// WriteLog appends one audit entry for the authenticated user.
func (h *LogHandler) WriteLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type WriteLogRequest struct {
		Action string `json:"action" binding:"required"`
		Target string `json:"target"`
	}

	var req WriteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.auditService.Write(userID, req.Action, req.Target); err != nil {
		if errors.Is(err, services.ErrActionRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to write log")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
