package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// MessageReadRepository handles message read operations. Ownership is
// checked one level up, against the parent conversation.
type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListByConversationID returns the conversation's messages in
// chronological order.
func (r *MessageReadRepository) ListByConversationID(ctx context.Context, conversationID uuid.UUID) ([]models.MessageDB, error) {
	const query = `
		SELECT message_id, conversation_id, sender_type, content, metadata, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	messages := make([]models.MessageDB, 0)
	err := r.db.SelectContext(ctx, &messages, query, conversationID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversationID},
		"error", err,
	)

	return messages, err
}

// MessageWriteRepository handles message write operations.
type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new message row and fills in the generated timestamp.
func (r *MessageWriteRepository) Save(ctx context.Context, message *models.MessageDB) error {
	const query = `
		INSERT INTO messages (message_id, conversation_id, sender_type, content, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{message.MessageID, message.ConversationID, message.SenderType, message.Content, message.Metadata}
	err := executor.QueryRowxContext(ctx, query, args...).Scan(&message.CreatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{message.MessageID, message.ConversationID},
		"error", err,
	)

	return err
}
