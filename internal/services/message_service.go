package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/repository"
)

var (
	ErrBodyRequired      = errors.New("message body is required")
	ErrRecipientNotFound = errors.New("recipient not found")
)

// MessageService handles direct messages between users.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Send stores a message after checking the recipient exists.
func (s *MessageService) Send(senderID, recipientID uint64, body string) error {
	if body == "" {
		return ErrBodyRequired
	}
	if _, err := s.userRepo.FindByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipientNotFound
		}
		return fmt.Errorf("failed to verify recipient: %w", err)
	}
	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// List returns messages the user sent or received, newest first.
func (s *MessageService) List(userID uint64) ([]models.Message, error) {
	messages, err := s.messageRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
