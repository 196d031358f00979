package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTaskService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, mockKafka)
	userID := uuid.New()

	t.Run("defaults applied", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		task, err := svc.Create(context.Background(), userID, "buy milk", nil, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, "buy milk", task.Title)
		assert.Equal(t, models.TaskStatusPending, task.Status)
		assert.Equal(t, models.TaskPriorityMedium, task.Priority)
		assert.Equal(t, userID, task.UserID)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("explicit priority kept", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		task, err := svc.Create(context.Background(), userID, "urgent", nil, strPtr(models.TaskPriorityHigh), nil)
		assert.NoError(t, err)
		assert.Equal(t, models.TaskPriorityHigh, task.Priority)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("save error"))

		task, err := svc.Create(context.Background(), userID, "broken", nil, nil, nil)
		assert.EqualError(t, err, "save error")
		assert.Nil(t, task)
	})

	t.Run("publish failure does not fail the operation", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		task, err := svc.Create(context.Background(), userID, "resilient", nil, nil, nil)
		assert.NoError(t, err)
		assert.NotNil(t, task)
	})
}

func TestTaskService_Create_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, nil)

	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	task, err := svc.Create(context.Background(), uuid.New(), "no broker", nil, nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, task)
}

func TestTaskService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, nil)
	userID := uuid.New()

	expected := []models.TaskDB{
		{TaskID: uuid.New(), UserID: userID, Title: "newest"},
		{TaskID: uuid.New(), UserID: userID, Title: "oldest"},
	}

	status := models.TaskStatusPending
	mockReader.EXPECT().ListByUserID(gomock.Any(), userID, &status).Return(expected, nil)

	tasks, err := svc.List(context.Background(), userID, &status)
	assert.NoError(t, err)
	assert.Equal(t, expected, tasks)

	mockReader.EXPECT().ListByUserID(gomock.Any(), userID, (*string)(nil)).Return(nil, errors.New("db error"))

	tasks, err = svc.List(context.Background(), userID, nil)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, tasks)
}

func TestTaskService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()
	taskID := uuid.New()
	due := time.Now().Add(24 * time.Hour).UTC()

	current := func() *models.TaskDB {
		return &models.TaskDB{
			TaskID:      taskID,
			UserID:      userID,
			Title:       "original title",
			Description: strPtr("original description"),
			Status:      models.TaskStatusPending,
			Priority:    models.TaskPriorityLow,
		}
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), taskID, userID).Return(current(), nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		task, err := svc.Update(context.Background(), userID, taskID, services.TaskUpdate{
			Status:  strPtr(models.TaskStatusInProgress),
			DueDate: &due,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.TaskStatusInProgress, task.Status)
		assert.Equal(t, &due, task.DueDate)
		// untouched fields survive
		assert.Equal(t, "original title", task.Title)
		assert.Equal(t, "original description", *task.Description)
		assert.Equal(t, models.TaskPriorityLow, task.Priority)
	})

	t.Run("absent task", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), taskID, userID).Return(nil, nil)

		task, err := svc.Update(context.Background(), userID, taskID, services.TaskUpdate{Title: strPtr("x")})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, task)
	})

	t.Run("row vanished between read and write", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), taskID, userID).Return(current(), nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)

		task, err := svc.Update(context.Background(), userID, taskID, services.TaskUpdate{Title: strPtr("x")})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, task)
	})
}

func TestTaskService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()
	taskID := uuid.New()

	t.Run("sets status and completion time", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), taskID, userID).
			Return(&models.TaskDB{TaskID: taskID, UserID: userID, Status: models.TaskStatusPending}, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		before := time.Now().UTC()
		task, err := svc.Complete(context.Background(), userID, taskID)
		assert.NoError(t, err)
		assert.Equal(t, models.TaskStatusCompleted, task.Status)
		assert.NotNil(t, task.CompletedAt)
		assert.False(t, task.CompletedAt.Before(before))
	})

	t.Run("absent task", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), taskID, userID).Return(nil, nil)

		task, err := svc.Complete(context.Background(), userID, taskID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, task)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTaskReader(ctrl)
	mockWriter := services.NewMockTaskWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewTaskService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()
	taskID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), taskID, userID).Return(true, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), userID, taskID)
		assert.NoError(t, err)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), taskID, userID).Return(false, nil)

		err := svc.Delete(context.Background(), userID, taskID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), taskID, userID).Return(false, errors.New("db error"))

		err := svc.Delete(context.Background(), userID, taskID)
		assert.EqualError(t, err, "db error")
	})
}
