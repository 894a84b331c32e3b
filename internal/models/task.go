package models

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	// StatusOverdue is normally computed by the display layer from the due
	// date; the store only carries it when a user sets it explicitly.
	StatusOverdue Status = "overdue"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Subtask is one checklist item of a task.
type Subtask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Task is a user-managed work item. The JSON shape matches the durable
// blob layout, camelCase keys included.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	Status           Status     `json:"status"`
	Priority         Priority   `json:"priority"`
	Tags             []string   `json:"tags,omitempty"`
	Category         string     `json:"category,omitempty"`
	Color            string     `json:"color,omitempty"`
	EstimateMinutes  *int       `json:"estimateMinutes,omitempty"`
	TimeSpentMinutes *int       `json:"timeSpentMinutes,omitempty"`
	Checklist        []Subtask  `json:"checklist,omitempty"`
	Favorite         bool       `json:"favorite"`
}
