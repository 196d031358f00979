package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
)

func strPtr(s string) *string { return &s }

// newAuthedRequest builds a request carrying an authenticated user ID, the
// way AuthMiddleware leaves it for downstream handlers.
func newAuthedRequest(method, target string, userID uuid.UUID, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middlewares.SetUserIDToContext(req.Context(), userID)
	return req.WithContext(ctx)
}
