package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTaskCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name          string
		body          string
		authed        bool
		mockSetup     func(m *MockTaskCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success",
			body:   `{"title":"buy milk"}`,
			authed: true,
			mockSetup: func(m *MockTaskCreator) {
				m.EXPECT().
					Create(gomock.Any(), userID, "buy milk", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.TaskDB{
						TaskID:   taskID,
						UserID:   userID,
						Title:    "buy milk",
						Status:   models.TaskStatusPending,
						Priority: models.TaskPriorityMedium,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing title",
			body:          `{"description":"no title"}`,
			authed:        true,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "invalid priority",
			body:          `{"title":"x","priority":"urgent"}`,
			authed:        true,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid priority",
		},
		{
			name:         "no authenticated user",
			body:         `{"title":"x"}`,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTaskCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTaskCreateHandler(mockSvc)

			var req *http.Request
			if tt.authed {
				req = newAuthedRequest(http.MethodPost, "/tasks", userID, bytes.NewBufferString(tt.body))
			} else {
				req = httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tt.body))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp TaskCreateErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}

			if tt.expectedCode == http.StatusCreated {
				var resp models.TaskDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, taskID, resp.TaskID)
				assert.Equal(t, models.TaskStatusPending, resp.Status)
			}
		})
	}
}
