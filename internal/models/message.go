package models

import (
	"time"

	"github.com/google/uuid"
)

// Message sender types.
const (
	SenderTypeUser      = "user"
	SenderTypeAssistant = "assistant"
)

// MessageDB represents a message record in the database.
type MessageDB struct {
	MessageID      uuid.UUID `json:"message_id" db:"message_id"`           // Primary key
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"` // Parent conversation
	SenderType     string    `json:"sender_type" db:"sender_type"`         // user or assistant
	Content        string    `json:"content" db:"content"`                 // Message body
	Metadata       *string   `json:"metadata" db:"metadata"`               // Optional JSON payload
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
}

// ValidSenderType reports whether s is a known sender type.
func ValidSenderType(s string) bool {
	return s == SenderTypeUser || s == SenderTypeAssistant
}
