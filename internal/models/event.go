package models

import (
	"time"

	"github.com/google/uuid"
)

// Task event types published to Kafka.
const (
	TaskEventCreated   = "task_created"
	TaskEventUpdated   = "task_updated"
	TaskEventCompleted = "task_completed"
	TaskEventDeleted   = "task_deleted"
)

// TaskEvent is the payload published for every task mutation.
type TaskEvent struct {
	EventID    string    `json:"event_id"`    // Unique event identifier
	EventType  string    `json:"event_type"`  // One of the TaskEvent* constants
	TaskID     uuid.UUID `json:"task_id"`     // Affected task
	UserID     uuid.UUID `json:"user_id"`     // Owning user
	OccurredAt time.Time `json:"occurred_at"` // Event time, UTC
}
