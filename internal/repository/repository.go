package repository

import (
	"github.com/ninetd/ninetd/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsernameOrEmail finds a user by either identifier
	FindByUsernameOrEmail(identifier string) (*models.User, error)
}

// TaskRepository defines the interface for server-side task data access.
// Every operation is scoped to the owning user.
type TaskRepository interface {
	// ListByUser retrieves a user's tasks, newest first
	ListByUser(userID uint64) ([]models.TaskRecord, error)

	// Create creates a new task row
	Create(task *models.TaskRecord) error

	// Update overwrites the task's mutable columns; updating a row that
	// does not exist (or belongs to another user) is a silent no-op
	Update(userID, id uint64, task *models.TaskRecord) error

	// Delete removes the task; missing rows are a silent no-op
	Delete(userID, id uint64) error
}

// AuditLogRepository defines the interface for audit log data access
type AuditLogRepository interface {
	// Write appends one audit entry
	Write(entry *models.AuditLog) error

	// ListByUser retrieves a user's audit entries, newest first
	ListByUser(userID uint64) ([]models.AuditLog, error)
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create stores a new message
	Create(message *models.Message) error

	// ListForUser retrieves messages sent or received by the user,
	// newest first
	ListForUser(userID uint64) ([]models.Message, error)
}
