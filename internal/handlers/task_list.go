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

// TaskLister defines the interface that the service must implement.
type TaskLister interface {
	List(ctx context.Context, userID uuid.UUID, status *string) ([]models.TaskDB, error)
}

// TaskListErrorResponse represents an error response for task listing
// swagger:model TaskListErrorResponse
type TaskListErrorResponse struct {
	// Error message
	// default: Invalid status
	Error string `json:"error"`
}

// NewTaskListHandler returns an HTTP handler listing the authenticated
// user's tasks, newest first.
// @Summary List tasks
// @Description Returns the authenticated user's tasks ordered by creation time, newest first. Optionally filtered by status.
// @Tags tasks
// @Produce json
// @Param status query string false "Filter by status: pending, in_progress or completed"
// @Success 200 {array} models.TaskDB "Tasks"
// @Failure 400 {object} handlers.TaskListErrorResponse "Invalid status"
// @Failure 401 "Unauthorized"
// @Router /tasks [get]
// @Security BearerAuth
func NewTaskListHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var status *string
		if s := r.URL.Query().Get("status"); s != "" {
			if !models.ValidTaskStatus(s) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TaskListErrorResponse{
					Error: "Invalid status",
				})
				return
			}
			status = &s
		}

		tasks, err := svc.List(r.Context(), userID, status)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TaskListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tasks)
	}
}
