package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessage is one turn of a user's conversation with the assistant.
type ChatMessage struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"index;not null"`
	Sender       string `gorm:"size:12;not null"` // user | assistant
	Text         string
	Type         string `gorm:"size:12"` // chat | hydration | motivation | suggestion
	QuickActions datatypes.JSON
	CreatedAt    time.Time `gorm:"index"`
}
