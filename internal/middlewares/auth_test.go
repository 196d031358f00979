package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	userID := uuid.New()

	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token123", nil)
	mockTokener.EXPECT().
		GetClaims(gomock.Any(), "token123").
		Return(&jwt.Claims{UserID: userID}, nil)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		got, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(mockTokener)(next)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("authorization header missing"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	handler := AuthMiddleware(mockTokener)(next)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		claimsErr error
	}{
		{"invalid token", jwt.ErrTokenInvalid},
		{"expired token", jwt.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockTokener.EXPECT().
				GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return("token123", nil)
			mockTokener.EXPECT().
				GetClaims(gomock.Any(), "token123").
				Return(nil, tt.claimsErr)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})

			handler := AuthMiddleware(mockTokener)(next)
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			// Invalid and expired tokens are indistinguishable to the caller
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}
