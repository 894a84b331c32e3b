package models

import "time"

// Server-side task status and priority defaults. The server row is
// deliberately the flat wire shape, not the richer client Task.
const (
	RecordStatusOpen     = "open"
	RecordPriorityMedium = "medium"
)

// TaskRecord is the server-side persisted form of a task, scoped to the
// owning user.
type TaskRecord struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	UserID      uint64     `gorm:"not null;index" json:"userId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Priority    string     `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
