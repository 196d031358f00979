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

// ConversationReadRepository handles conversation read operations.
type ConversationReadRepository struct {
	db *sqlx.DB
}

func NewConversationReadRepository(db *sqlx.DB) *ConversationReadRepository {
	return &ConversationReadRepository{db: db}
}

// GetByID returns the conversation owned by userID, or nil when absent or
// owned by someone else.
func (r *ConversationReadRepository) GetByID(ctx context.Context, conversationID, userID uuid.UUID) (*models.ConversationDB, error) {
	const query = `
		SELECT conversation_id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE conversation_id = $1 AND user_id = $2
	`

	var conversation models.ConversationDB
	err := r.db.GetContext(ctx, &conversation, query, conversationID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversationID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &conversation, nil
}

// ListByUserID returns the user's conversations ordered by last activity,
// newest first.
func (r *ConversationReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ConversationDB, error) {
	const query = `
		SELECT conversation_id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	conversations := make([]models.ConversationDB, 0)
	err := r.db.SelectContext(ctx, &conversations, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return conversations, err
}

// ConversationWriteRepository handles conversation write operations.
type ConversationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewConversationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ConversationWriteRepository {
	return &ConversationWriteRepository{db: db, txGetter: txGetter}
}

func (r *ConversationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new conversation row and fills in the generated timestamps.
func (r *ConversationWriteRepository) Save(ctx context.Context, conversation *models.ConversationDB) error {
	const query = `
		INSERT INTO conversations (conversation_id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	args := []any{conversation.ConversationID, conversation.UserID, conversation.Title}
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&conversation.CreatedAt, &conversation.UpdatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversation.ConversationID, conversation.UserID},
		"error", err,
	)

	return err
}

// UpdateTitle sets the conversation title, refreshing updated_at. The owner
// filter makes a foreign conversation look like sql.ErrNoRows.
func (r *ConversationWriteRepository) UpdateTitle(ctx context.Context, conversation *models.ConversationDB) error {
	const query = `
		UPDATE conversations
		SET title = $3, updated_at = NOW()
		WHERE conversation_id = $1 AND user_id = $2
		RETURNING updated_at
	`

	args := []any{conversation.ConversationID, conversation.UserID, conversation.Title}
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&conversation.UpdatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversation.ConversationID, conversation.UserID},
		"error", err,
	)

	return err
}

// Touch bumps the conversation's updated_at, keeping the list ordering in
// step with message activity.
func (r *ConversationWriteRepository) Touch(ctx context.Context, conversationID uuid.UUID) error {
	const query = `
		UPDATE conversations
		SET updated_at = NOW()
		WHERE conversation_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, conversationID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversationID},
		"error", err,
	)

	return err
}
