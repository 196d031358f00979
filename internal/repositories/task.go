package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// TaskReadRepository handles task read operations. Every lookup filters by
// the owning user, so a foreign task ID behaves exactly like a missing one.
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the task with the given ID owned by userID, or nil when
// absent or owned by someone else.
func (r *TaskReadRepository) GetByID(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error) {
	const query = `
		SELECT task_id, user_id, title, description, status, priority, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE task_id = $1 AND user_id = $2
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, taskID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// ListByUserID returns the user's tasks ordered by creation time,
// newest first, optionally filtered by status.
func (r *TaskReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]models.TaskDB, error) {
	const query = `
		SELECT task_id, user_id, title, description, status, priority, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR status = $2)
		ORDER BY created_at DESC
	`

	tasks := make([]models.TaskDB, 0)
	err := r.db.SelectContext(ctx, &tasks, query, userID, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, status},
		"error", err,
	)

	return tasks, err
}

// TaskWriteRepository handles task write operations.
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

func (r *TaskWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new task row and fills in the generated timestamps.
func (r *TaskWriteRepository) Save(ctx context.Context, task *models.TaskDB) error {
	const query = `
		INSERT INTO tasks (task_id, user_id, title, description, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	args := []any{task.TaskID, task.UserID, task.Title, task.Description, task.Status, task.Priority, task.DueDate}
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{task.TaskID, task.UserID},
		"error", err,
	)

	return err
}

// Update writes the full task row back, refreshing updated_at. The owner
// filter makes a concurrent delete or a foreign row look like sql.ErrNoRows.
func (r *TaskWriteRepository) Update(ctx context.Context, task *models.TaskDB) error {
	const query = `
		UPDATE tasks
		SET title = $3, description = $4, status = $5, priority = $6, due_date = $7, completed_at = $8, updated_at = NOW()
		WHERE task_id = $1 AND user_id = $2
		RETURNING updated_at
	`

	args := []any{task.TaskID, task.UserID, task.Title, task.Description, task.Status, task.Priority, task.DueDate, task.CompletedAt}
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&task.UpdatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{task.TaskID, task.UserID},
		"error", err,
	)

	return err
}

// Delete removes the task owned by userID. Returns false when no row matched.
func (r *TaskWriteRepository) Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM tasks
		WHERE task_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, taskID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{taskID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
