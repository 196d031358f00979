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

// MessageLister defines the interface that the service must implement.
type MessageLister interface {
	ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]models.MessageDB, error)
}

// MessageListErrorResponse represents an error response for message listing
// swagger:model MessageListErrorResponse
type MessageListErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewMessageListHandler returns an HTTP handler listing the messages of
// one of the authenticated user's conversations in chronological order.
// @Summary List messages
// @Description Returns the messages of the authenticated user's conversation, oldest first.
// @Tags conversations
// @Produce json
// @Param conversationID path string true "Conversation ID"
// @Success 200 {array} models.MessageDB "Messages"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.MessageListErrorResponse "Conversation not found"
// @Router /conversations/{conversationID}/messages [get]
// @Security BearerAuth
func NewMessageListHandler(svc MessageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conversationID, err := uuid.Parse(chi.URLParam(r, "conversationID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageListErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		messages, err := svc.ListMessages(r.Context(), userID, conversationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageListErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageListErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(messages)
	}
}
