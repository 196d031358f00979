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

// TaskCompleter defines the interface that the service must implement.
type TaskCompleter interface {
	Complete(ctx context.Context, userID, taskID uuid.UUID) (*models.TaskDB, error)
}

// TaskCompleteErrorResponse represents an error response for task completion
// swagger:model TaskCompleteErrorResponse
type TaskCompleteErrorResponse struct {
	// Error message
	// default: Task not found
	Error string `json:"error"`
}

// NewTaskCompleteHandler returns an HTTP handler marking the authenticated
// user's task as completed.
// @Summary Complete a task
// @Description Marks the authenticated user's task as completed and stamps the completion time.
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task ID"
// @Success 200 {object} models.TaskDB "Completed task"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.TaskCompleteErrorResponse "Task not found"
// @Router /tasks/{taskID}/complete [post]
// @Security BearerAuth
func NewTaskCompleteHandler(svc TaskCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TaskCompleteErrorResponse{
				Error: "Task not found",
			})
			return
		}

		task, err := svc.Complete(r.Context(), userID, taskID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TaskCompleteErrorResponse{
					Error: "Task not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TaskCompleteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(task)
	}
}
