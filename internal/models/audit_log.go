package models

import "time"

// AuditLog is the server-side audit trail. It is a separate system from
// the client activity log and the two are not reconciled.
type AuditLog struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Target    string    `gorm:"type:varchar(255)" json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}
