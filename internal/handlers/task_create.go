package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// TaskCreator defines the interface that the service must implement.
type TaskCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string, description *string, priority *string, dueDate *time.Time) (*models.TaskDB, error)
}

// TaskCreateRequest represents the JSON body for task creation
// swagger:model TaskCreateRequest
type TaskCreateRequest struct {
	// Task title
	// required: true
	// default: buy milk
	Title string `json:"title"`

	// Description
	Description *string `json:"description"`

	// Priority: low, medium or high
	// default: medium
	Priority *string `json:"priority"`

	// Due date
	DueDate *time.Time `json:"due_date"`
}

// TaskCreateErrorResponse represents an error response for task creation
// swagger:model TaskCreateErrorResponse
type TaskCreateErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewTaskCreateHandler returns an HTTP handler for creating a task owned
// by the authenticated user.
// @Summary Create a task
// @Description Creates a new task for the authenticated user. Status starts as pending.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body handlers.TaskCreateRequest true "Task creation request"
// @Success 201 {object} models.TaskDB "Created task"
// @Failure 400 {object} handlers.TaskCreateErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Router /tasks [post]
// @Security BearerAuth
func NewTaskCreateHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req TaskCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskCreateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
		if req.Priority != nil && !models.ValidTaskPriority(*req.Priority) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskCreateErrorResponse{
				Error: "Invalid priority",
			})
			return
		}

		task, err := svc.Create(r.Context(), userID, req.Title, req.Description, req.Priority, req.DueDate)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TaskCreateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	}
}
