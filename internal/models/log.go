package models

import "time"

type LogType string

const (
	LogCreated   LogType = "created"
	LogUpdated   LogType = "updated"
	LogDeleted   LogType = "deleted"
	LogCompleted LogType = "completed"
	LogReopened  LogType = "reopened"
	LogPinned    LogType = "pinned"
	LogSystem    LogType = "system"
)

// LogEntry records one domain event. Once created every field is
// immutable except Pinned.
type LogEntry struct {
	ID        string            `json:"id"`
	Type      LogType           `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Color     string            `json:"color,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Pinned    bool              `json:"pinned"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// DefaultLogColor returns the display accent used when a log entry is
// emitted without an explicit color.
func DefaultLogColor(t LogType) string {
	switch t {
	case LogCreated:
		return "#16a34a"
	case LogUpdated:
		return "#3b82f6"
	case LogDeleted:
		return "#ef4444"
	case LogCompleted:
		return "#10b981"
	case LogReopened:
		return "#f59e0b"
	case LogPinned:
		return "#6366f1"
	case LogSystem:
		return "#6b7280"
	default:
		return "#60a5fa"
	}
}
