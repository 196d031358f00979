package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
)

// MessageCreator defines the interface that the service must implement.
type MessageCreator interface {
	AddMessage(ctx context.Context, userID, conversationID uuid.UUID, senderType, content string, metadata *string) (*models.MessageDB, error)
}

// MessageCreateRequest represents the JSON body for appending a message
// swagger:model MessageCreateRequest
type MessageCreateRequest struct {
	// Sender type: user or assistant
	// required: true
	// default: user
	SenderType string `json:"sender_type"`

	// Message content
	// required: true
	// default: What is on my list today?
	Content string `json:"content"`

	// Optional JSON metadata
	Metadata *string `json:"metadata"`
}

// MessageCreateErrorResponse represents an error response for message creation
// swagger:model MessageCreateErrorResponse
type MessageCreateErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewMessageCreateHandler returns an HTTP handler appending a message to
// one of the authenticated user's conversations.
// @Summary Add a message
// @Description Appends a message to the authenticated user's conversation and bumps the conversation's last activity.
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversationID path string true "Conversation ID"
// @Param request body handlers.MessageCreateRequest true "Message creation request"
// @Success 201 {object} models.MessageDB "Created message"
// @Failure 400 {object} handlers.MessageCreateErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.MessageCreateErrorResponse "Conversation not found"
// @Router /conversations/{conversationID}/messages [post]
// @Security BearerAuth
func NewMessageCreateHandler(svc MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conversationID, err := uuid.Parse(chi.URLParam(r, "conversationID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageCreateErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		var req MessageCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageCreateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
		if !models.ValidSenderType(req.SenderType) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageCreateErrorResponse{
				Error: "Invalid sender type",
			})
			return
		}

		message, err := svc.AddMessage(r.Context(), userID, conversationID, req.SenderType, req.Content, req.Metadata)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageCreateErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageCreateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	}
}
