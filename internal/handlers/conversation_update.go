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

// ConversationTitleUpdater defines the interface that the service must implement.
type ConversationTitleUpdater interface {
	UpdateTitle(ctx context.Context, userID, conversationID uuid.UUID, title string) (*models.ConversationDB, error)
}

// ConversationUpdateRequest represents the JSON body for renaming a conversation
// swagger:model ConversationUpdateRequest
type ConversationUpdateRequest struct {
	// New conversation title
	// required: true
	// default: Weekly planning
	Title string `json:"title"`
}

// ConversationUpdateErrorResponse represents an error response for conversation renaming
// swagger:model ConversationUpdateErrorResponse
type ConversationUpdateErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewConversationUpdateHandler returns an HTTP handler renaming one of
// the authenticated user's conversations.
// @Summary Rename a conversation
// @Description Updates the title of the authenticated user's conversation.
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversationID path string true "Conversation ID"
// @Param request body handlers.ConversationUpdateRequest true "Conversation update request"
// @Success 200 {object} models.ConversationDB "Updated conversation"
// @Failure 400 {object} handlers.ConversationUpdateErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.ConversationUpdateErrorResponse "Conversation not found"
// @Router /conversations/{conversationID} [patch]
// @Security BearerAuth
func NewConversationUpdateHandler(svc ConversationTitleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conversationID, err := uuid.Parse(chi.URLParam(r, "conversationID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ConversationUpdateErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		var req ConversationUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConversationUpdateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		conversation, err := svc.UpdateTitle(r.Context(), userID, conversationID, req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConversationUpdateErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConversationUpdateErrorResponse{
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
