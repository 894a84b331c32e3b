package repository

import (
	"github.com/ninetd/ninetd/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByUser retrieves a user's tasks, newest first
func (r *GormTaskRepository) ListByUser(userID uint64) ([]models.TaskRecord, error) {
	tasks := []models.TaskRecord{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	return tasks, err
}

// Create creates a new task row
func (r *GormTaskRepository) Create(task *models.TaskRecord) error {
	return r.db.Create(task).Error
}

// Update overwrites the task's mutable columns for the owning user.
// A zero-row update is not an error.
func (r *GormTaskRepository) Update(userID, id uint64, task *models.TaskRecord) error {
	return r.db.Model(&models.TaskRecord{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("title", "description", "status", "priority", "due_date", "tags").
		Updates(task).Error
}

// Delete removes the task for the owning user; missing rows are a no-op
func (r *GormTaskRepository) Delete(userID, id uint64) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.TaskRecord{}).Error
}
