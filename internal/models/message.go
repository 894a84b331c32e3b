package models

import "time"

// Message is a direct message between two users.
type Message struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	SenderID    uint64    `gorm:"not null;index" json:"senderId"`
	RecipientID uint64    `gorm:"not null;index" json:"recipientId"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}
