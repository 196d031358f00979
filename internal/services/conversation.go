package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// ConversationReader defines read-only operations for conversations.
type ConversationReader interface {
	GetByID(ctx context.Context, conversationID, userID uuid.UUID) (*models.ConversationDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ConversationDB, error)
}

// ConversationWriter defines write operations for conversations.
type ConversationWriter interface {
	Save(ctx context.Context, conversation *models.ConversationDB) error
	UpdateTitle(ctx context.Context, conversation *models.ConversationDB) error
	Touch(ctx context.Context, conversationID uuid.UUID) error
}

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	ListByConversationID(ctx context.Context, conversationID uuid.UUID) ([]models.MessageDB, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, message *models.MessageDB) error
}

// ConversationService handles conversation and message CRUD scoped to the
// owning user. Message ownership is enforced through the parent
// conversation: no message operation runs before the conversation is
// confirmed to belong to the caller.
type ConversationService struct {
	convReader ConversationReader
	convWriter ConversationWriter
	msgReader  MessageReader
	msgWriter  MessageWriter
}

// NewConversationService creates a new ConversationService instance.
func NewConversationService(
	convReader ConversationReader,
	convWriter ConversationWriter,
	msgReader MessageReader,
	msgWriter MessageWriter,
) *ConversationService {
	return &ConversationService{
		convReader: convReader,
		convWriter: convWriter,
		msgReader:  msgReader,
		msgWriter:  msgWriter,
	}
}

// Create starts a new conversation owned by userID.
func (svc *ConversationService) Create(ctx context.Context, userID uuid.UUID, title *string) (*models.ConversationDB, error) {
	conversation := &models.ConversationDB{
		ConversationID: uuid.New(),
		UserID:         userID,
		Title:          title,
	}

	if err := svc.convWriter.Save(ctx, conversation); err != nil {
		logger.Log.Errorw("failed to save conversation", "err", err)
		return nil, err
	}

	return conversation, nil
}

// List returns the user's conversations ordered by last activity.
func (svc *ConversationService) List(ctx context.Context, userID uuid.UUID) ([]models.ConversationDB, error) {
	conversations, err := svc.convReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list conversations", "err", err)
		return nil, err
	}
	return conversations, nil
}

// Get returns the user's conversation by ID.
func (svc *ConversationService) Get(ctx context.Context, userID, conversationID uuid.UUID) (*models.ConversationDB, error) {
	conversation, err := svc.convReader.GetByID(ctx, conversationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "err", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrNotFound
	}
	return conversation, nil
}

// UpdateTitle renames the user's conversation.
func (svc *ConversationService) UpdateTitle(ctx context.Context, userID, conversationID uuid.UUID, title string) (*models.ConversationDB, error) {
	conversation, err := svc.convReader.GetByID(ctx, conversationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "err", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrNotFound
	}

	conversation.Title = &title
	if err := svc.convWriter.UpdateTitle(ctx, conversation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to update conversation title", "err", err)
		return nil, err
	}

	return conversation, nil
}

// AddMessage appends a message to the user's conversation and bumps the
// conversation's updated_at.
func (svc *ConversationService) AddMessage(ctx context.Context, userID, conversationID uuid.UUID, senderType, content string, metadata *string) (*models.MessageDB, error) {
	conversation, err := svc.convReader.GetByID(ctx, conversationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "err", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrNotFound
	}

	message := &models.MessageDB{
		MessageID:      uuid.New(),
		ConversationID: conversationID,
		SenderType:     senderType,
		Content:        content,
		Metadata:       metadata,
	}

	if err := svc.msgWriter.Save(ctx, message); err != nil {
		logger.Log.Errorw("failed to save message", "err", err)
		return nil, err
	}

	if err := svc.convWriter.Touch(ctx, conversationID); err != nil {
		logger.Log.Errorw("failed to touch conversation", "err", err)
		return nil, err
	}

	return message, nil
}

// ListMessages returns the user's conversation messages in chronological order.
func (svc *ConversationService) ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]models.MessageDB, error) {
	conversation, err := svc.convReader.GetByID(ctx, conversationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "err", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrNotFound
	}

	messages, err := svc.msgReader.ListByConversationID(ctx, conversationID)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "err", err)
		return nil, err
	}
	return messages, nil
}
