package services

import (
	"errors"
	"fmt"

	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/repository"
)

var ErrActionRequired = errors.New("action is required")

// AuditService records server-side audit entries. This trail is
// independent of the client activity log; the two are never reconciled.
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Write appends one audit entry for the user.
func (s *AuditService) Write(userID uint64, action, target string) error {
	if action == "" {
		return ErrActionRequired
	}
	entry := &models.AuditLog{
		UserID: userID,
		Action: action,
		Target: target,
	}
	if err := s.auditRepo.Write(entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// List returns the user's audit entries, newest first.
func (s *AuditService) List(userID uint64) ([]models.AuditLog, error) {
	entries, err := s.auditRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
