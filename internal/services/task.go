package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrNotFound is returned when a resource is absent or owned by another
// user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, task *models.TaskDB) error
	Update(ctx context.Context, task *models.TaskDB) error
	Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TaskUpdate carries the fields of a partial task update. Nil fields
// retain their prior values.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// TaskService handles task CRUD scoped to the owning user.
type TaskService struct {
	readRepo    TaskReader
	writeRepo   TaskWriter
	kafkaWriter KafkaWriter
}

// NewTaskService creates a new TaskService. kafkaWriter may be nil, in
// which case event publishing is skipped.
func NewTaskService(readRepo TaskReader, writeRepo TaskWriter, kafkaWriter KafkaWriter) *TaskService {
	return &TaskService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a task mutation event to Kafka.
func (svc *TaskService) publishEvent(ctx context.Context, eventType string, taskID, userID uuid.UUID) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_type", eventType)
		return
	}

	event := models.TaskEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		TaskID:     taskID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal task event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(taskID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish task event", "event_id", event.EventID, "error", err)
	}
}

// Create inserts a new task owned by userID. Status starts as pending;
// priority defaults to medium.
func (svc *TaskService) Create(ctx context.Context, userID uuid.UUID, title string, description *string, priority *string, dueDate *time.Time) (*models.TaskDB, error) {
	task := &models.TaskDB{
		TaskID:      uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityMedium,
		DueDate:     dueDate,
	}
	if priority != nil {
		task.Priority = *priority
	}

	if err := svc.writeRepo.Save(ctx, task); err != nil {
		logger.Log.Errorw("failed to save task", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.TaskEventCreated, task.TaskID, userID)
	return task, nil
}

// List returns the user's tasks, newest first, optionally filtered by status.
func (svc *TaskService) List(ctx context.Context, userID uuid.UUID, status *string) ([]models.TaskDB, error) {
	tasks, err := svc.readRepo.ListByUserID(ctx, userID, status)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "err", err)
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update to the user's task. Omitted fields keep
// their prior values; updated_at is always refreshed.
func (svc *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, upd TaskUpdate) (*models.TaskDB, error) {
	task, err := svc.readRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}

	if err := svc.writeRepo.Update(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to update task", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.TaskEventUpdated, task.TaskID, userID)
	return task, nil
}

// Complete marks the user's task as completed and stamps completed_at.
func (svc *TaskService) Complete(ctx context.Context, userID, taskID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.readRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	task.Status = models.TaskStatusCompleted
	task.CompletedAt = &now

	if err := svc.writeRepo.Update(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to complete task", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.TaskEventCompleted, task.TaskID, userID)
	return task, nil
}

// Delete removes the user's task. Deletion is irreversible.
func (svc *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	deleted, err := svc.writeRepo.Delete(ctx, taskID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete task", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	svc.publishEvent(ctx, models.TaskEventDeleted, taskID, userID)
	return nil
}
