package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
)

// TaskUpdater defines the interface that the service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, userID, taskID uuid.UUID, upd services.TaskUpdate) (*models.TaskDB, error)
}

// TaskUpdateRequest represents the JSON body for a partial task update.
// Omitted fields retain their prior values.
// swagger:model TaskUpdateRequest
type TaskUpdateRequest struct {
	// Task title
	Title *string `json:"title"`

	// Description
	Description *string `json:"description"`

	// Status: pending, in_progress or completed
	Status *string `json:"status"`

	// Priority: low, medium or high
	Priority *string `json:"priority"`

	// Due date
	DueDate *time.Time `json:"due_date"`
}

// TaskUpdateErrorResponse represents an error response for task updates
// swagger:model TaskUpdateErrorResponse
type TaskUpdateErrorResponse struct {
	// Error message
	// default: Task not found
	Error string `json:"error"`
}

// NewTaskUpdateHandler returns an HTTP handler applying a partial update
// to the authenticated user's task. A task owned by another user, or a
// path ID that is not a valid UUID, is answered exactly like a missing
// task.
// @Summary Update a task
// @Description Applies a partial update to the authenticated user's task; omitted fields keep their prior values.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID"
// @Param request body handlers.TaskUpdateRequest true "Task update request"
// @Success 200 {object} models.TaskDB "Updated task"
// @Failure 400 {object} handlers.TaskUpdateErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} handlers.TaskUpdateErrorResponse "Task not found"
// @Router /tasks/{taskID} [patch]
// @Security BearerAuth
func NewTaskUpdateHandler(svc TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
				Error: "Task not found",
			})
			return
		}

		var req TaskUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
		if req.Status != nil && !models.ValidTaskStatus(*req.Status) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
				Error: "Invalid status",
			})
			return
		}
		if req.Priority != nil && !models.ValidTaskPriority(*req.Priority) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
				Error: "Invalid priority",
			})
			return
		}

		task, err := svc.Update(r.Context(), userID, taskID, services.TaskUpdate{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
					Error: "Task not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TaskUpdateErrorResponse{
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
