package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-task-assistant/internal/jwt"
	"github.com/sbilibin2017/gw-task-assistant/internal/password"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// Exercises the whole stack below the HTTP layer: registration, login,
// token claims and user-scoped task access against a real database.
func TestUserScopedFlow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()
	ctx := context.Background()

	hasher := password.New(password.WithCost(bcrypt.MinCost))
	tokens := jwt.New(jwt.WithSecretKey("integration-secret"), jwt.WithExpiration(time.Minute))

	authSvc := services.NewAuthService(
		NewUserReadRepository(db),
		NewUserWriteRepository(db, nil),
		hasher,
		tokens,
	)
	taskSvc := services.NewTaskService(
		NewTaskReadRepository(db),
		NewTaskWriteRepository(db, nil),
		nil,
	)

	alice, err := authSvc.Register(ctx, "alice", "wonderland", nil, nil)
	assert.NoError(t, err)

	bob, err := authSvc.Register(ctx, "bob", "builder", nil, nil)
	assert.NoError(t, err)

	_, err = authSvc.Register(ctx, "alice", "again", nil, nil)
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	_, err = authSvc.Login(ctx, "alice", "not-the-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	token, err := authSvc.Login(ctx, "alice", "wonderland")
	assert.NoError(t, err)

	claims, err := tokens.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, alice.UserID, claims.UserID)

	task, err := taskSvc.Create(ctx, alice.UserID, "buy milk", nil, nil, nil)
	assert.NoError(t, err)

	aliceTasks, err := taskSvc.List(ctx, alice.UserID, nil)
	assert.NoError(t, err)
	assert.Len(t, aliceTasks, 1)

	bobTasks, err := taskSvc.List(ctx, bob.UserID, nil)
	assert.NoError(t, err)
	assert.Empty(t, bobTasks)

	_, err = taskSvc.Update(ctx, bob.UserID, task.TaskID, services.TaskUpdate{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = taskSvc.Delete(ctx, bob.UserID, task.TaskID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = taskSvc.Delete(ctx, alice.UserID, task.TaskID)
	assert.NoError(t, err)
}
