package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestConversationListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("last activity order preserved", func(t *testing.T) {
		mockSvc := NewMockConversationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.ConversationDB{
				{ConversationID: uuid.New(), UserID: userID, Title: strPtr("active")},
				{ConversationID: uuid.New(), UserID: userID, Title: strPtr("stale")},
			}, nil)

		req := newAuthedRequest(http.MethodGet, "/conversations", userID, nil)
		rr := httptest.NewRecorder()
		NewConversationListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var conversations []models.ConversationDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &conversations))
		assert.Len(t, conversations, 2)
		assert.Equal(t, "active", *conversations[0].Title)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockConversationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		req := newAuthedRequest(http.MethodGet, "/conversations", userID, nil)
		rr := httptest.NewRecorder()
		NewConversationListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
