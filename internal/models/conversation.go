package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationDB represents a conversation record in the database.
type ConversationDB struct {
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"` // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Owning user
	Title          *string   `json:"title" db:"title"`                     // Optional title
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Bumped on every message
}
