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

// ConversationLister defines the interface that the service must implement.
type ConversationLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ConversationDB, error)
}

// ConversationListErrorResponse represents an error response for conversation listing
// swagger:model ConversationListErrorResponse
type ConversationListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewConversationListHandler returns an HTTP handler listing the
// authenticated user's conversations, most recently active first.
// @Summary List conversations
// @Description Returns the authenticated user's conversations ordered by last activity.
// @Tags conversations
// @Produce json
// @Success 200 {array} models.ConversationDB "Conversations"
// @Failure 401 "Unauthorized"
// @Router /conversations [get]
// @Security BearerAuth
func NewConversationListHandler(svc ConversationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conversations, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConversationListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(conversations)
	}
}
