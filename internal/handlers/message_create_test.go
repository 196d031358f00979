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

func TestMessageCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	convID := uuid.New()
	msgID := uuid.New()

	newRouter := func(mockSvc *MockMessageCreator) *chi.Mux {
		r := chi.NewRouter()
		r.Post("/conversations/{conversationID}/messages", NewMessageCreateHandler(mockSvc))
		return r
	}
	target := "/conversations/" + convID.String() + "/messages"

	t.Run("appended", func(t *testing.T) {
		mockSvc := NewMockMessageCreator(ctrl)
		mockSvc.EXPECT().
			AddMessage(gomock.Any(), userID, convID, models.SenderTypeUser, "hello", (*string)(nil)).
			Return(&models.MessageDB{MessageID: msgID, ConversationID: convID, SenderType: models.SenderTypeUser, Content: "hello"}, nil)

		req := newAuthedRequest(http.MethodPost, target, userID, bytes.NewBufferString(`{"sender_type":"user","content":"hello"}`))
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp models.MessageDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, msgID, resp.MessageID)
		assert.Equal(t, "hello", resp.Content)
	})

	t.Run("invalid sender type", func(t *testing.T) {
		mockSvc := NewMockMessageCreator(ctrl)

		req := newAuthedRequest(http.MethodPost, target, userID, bytes.NewBufferString(`{"sender_type":"robot","content":"hello"}`))
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp MessageCreateErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid sender type", resp.Error)
	})

	t.Run("missing content", func(t *testing.T) {
		mockSvc := NewMockMessageCreator(ctrl)

		req := newAuthedRequest(http.MethodPost, target, userID, bytes.NewBufferString(`{"sender_type":"user"}`))
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("foreign conversation", func(t *testing.T) {
		mockSvc := NewMockMessageCreator(ctrl)
		mockSvc.EXPECT().
			AddMessage(gomock.Any(), userID, convID, models.SenderTypeUser, "hello", (*string)(nil)).
			Return(nil, services.ErrNotFound)

		req := newAuthedRequest(http.MethodPost, target, userID, bytes.NewBufferString(`{"sender_type":"user","content":"hello"}`))
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
