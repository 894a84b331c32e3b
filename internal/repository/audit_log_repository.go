package repository

import (
	"github.com/ninetd/ninetd/internal/models"
	"gorm.io/gorm"
)

// GormAuditLogRepository is a GORM implementation of AuditLogRepository
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Write appends one audit entry
func (r *GormAuditLogRepository) Write(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// ListByUser retrieves a user's audit entries, newest first
func (r *GormAuditLogRepository) ListByUser(userID uint64) ([]models.AuditLog, error) {
	entries := []models.AuditLog{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}
