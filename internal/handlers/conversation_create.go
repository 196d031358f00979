package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// ConversationCreator defines the interface that the service must implement.
type ConversationCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title *string) (*models.ConversationDB, error)
}

// ConversationCreateRequest represents the JSON body for starting a conversation
// swagger:model ConversationCreateRequest
type ConversationCreateRequest struct {
	// Conversation title
	// default: Groceries planning
	Title *string `json:"title"`
}

// ConversationCreateErrorResponse represents an error response for conversation creation
// swagger:model ConversationCreateErrorResponse
type ConversationCreateErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewConversationCreateHandler returns an HTTP handler starting a new
// conversation owned by the authenticated user.
// @Summary Create a conversation
// @Description Starts a new conversation for the authenticated user.
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body handlers.ConversationCreateRequest true "Conversation creation request"
// @Success 201 {object} models.ConversationDB "Created conversation"
// @Failure 400 {object} handlers.ConversationCreateErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Router /conversations [post]
// @Security BearerAuth
func NewConversationCreateHandler(svc ConversationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req ConversationCreateRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConversationCreateErrorResponse{
					Error: "Invalid request body",
				})
				return
			}
		}

		conversation, err := svc.Create(r.Context(), userID, req.Title)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConversationCreateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(conversation)
	}
}
