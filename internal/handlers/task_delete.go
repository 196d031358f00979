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
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
)

// TaskDeleter defines the interface that the service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskDeleteErrorResponse represents an error response for task deletion
// swagger:model TaskDeleteErrorResponse
type TaskDeleteErrorResponse struct {
	// Error message
	// default: Task not found
	Error string `json:"error"`
}

// NewTaskDeleteHandler returns an HTTP handler deleting the authenticated
// user's task. Deletion is irreversible.
// @Summary Delete a task
// @Description Deletes the authenticated user's task.
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task ID"
// @Success 204 "Task deleted"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.TaskDeleteErrorResponse "Task not found"
// @Router /tasks/{taskID} [delete]
// @Security BearerAuth
func NewTaskDeleteHandler(svc TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TaskDeleteErrorResponse{
				Error: "Task not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), userID, taskID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TaskDeleteErrorResponse{
					Error: "Task not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TaskDeleteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
