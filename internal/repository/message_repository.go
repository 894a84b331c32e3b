package repository

import (
	"github.com/ninetd/ninetd/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create stores a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListForUser retrieves messages sent or received by the user, newest first
func (r *GormMessageRepository) ListForUser(userID uint64) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	return messages, err
}
