package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTaskUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name          string
		target        string
		body          string
		mockSetup     func(m *MockTaskUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "partial update",
			target: "/tasks/" + taskID.String(),
			body:   `{"status":"in_progress"}`,
			mockSetup: func(m *MockTaskUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, taskID, services.TaskUpdate{Status: strPtr(models.TaskStatusInProgress)}).
					Return(&models.TaskDB{TaskID: taskID, UserID: userID, Status: models.TaskStatusInProgress}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed task ID answered as missing",
			target:        "/tasks/not-a-uuid",
			body:          `{"status":"in_progress"}`,
			expectedCode:  http.StatusNotFound,
			expectedError: "Task not found",
		},
		{
			name:   "task owned by someone else",
			target: "/tasks/" + taskID.String(),
			body:   `{"title":"stolen"}`,
			mockSetup: func(m *MockTaskUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, taskID, gomock.Any()).
					Return(nil, services.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Task not found",
		},
		{
			name:          "invalid status",
			target:        "/tasks/" + taskID.String(),
			body:          `{"status":"bogus"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid status",
		},
		{
			name:          "invalid json",
			target:        "/tasks/" + taskID.String(),
			body:          "{broken",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTaskUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Patch("/tasks/{taskID}", NewTaskUpdateHandler(mockSvc))

			req := newAuthedRequest(http.MethodPatch, tt.target, userID, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp TaskUpdateErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
