package models

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// TaskDB represents a task record in the database.
type TaskDB struct {
	TaskID      uuid.UUID  `json:"task_id" db:"task_id"`           // Primary key
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`           // Owning user
	Title       string     `json:"title" db:"title"`               // Task title
	Description *string    `json:"description" db:"description"`   // Optional description
	Status      string     `json:"status" db:"status"`             // pending, in_progress or completed
	Priority    string     `json:"priority" db:"priority"`         // low, medium or high
	DueDate     *time.Time `json:"due_date" db:"due_date"`         // Optional due date
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"` // Set when status becomes completed
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is a known task priority.
func ValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
