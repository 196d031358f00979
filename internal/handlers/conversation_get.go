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

// ConversationGetter defines the interface that the service must implement.
type ConversationGetter interface {
	Get(ctx context.Context, userID, conversationID uuid.UUID) (*models.ConversationDB, error)
}

// ConversationGetErrorResponse represents an error response for conversation retrieval
// swagger:model ConversationGetErrorResponse
type ConversationGetErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewConversationGetHandler returns an HTTP handler fetching one of the
// authenticated user's conversations. A conversation owned by another
// user, or a path ID that is not a valid UUID, is answered exactly like a
// missing conversation.
// @Summary Get a conversation
// @Description Returns the authenticated user's conversation by ID.
// @Tags conversations
// @Produce json
// @Param conversationID path string true "Conversation ID"
// @Success 200 {object} models.ConversationDB "Conversation"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.ConversationGetErrorResponse "Conversation not found"
// @Router /conversations/{conversationID} [get]
// @Security BearerAuth
func NewConversationGetHandler(svc ConversationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conversationID, err := uuid.Parse(chi.URLParam(r, "conversationID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ConversationGetErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		conversation, err := svc.Get(r.Context(), userID, conversationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConversationGetErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConversationGetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(conversation)
	}
}
