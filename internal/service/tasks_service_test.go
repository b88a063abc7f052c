package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository/mocks"
	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTasksRepositoryI(ctrl)
	serv := service.NewTasksService(repo)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Request      service.CreateTaskRequest
		Error        error
		Priority     string
		MockPrepFunc func()
	}{
		{
			Desc:     "defaults",
			Request:  service.CreateTaskRequest{Title: "  Read chapter 3 "},
			Priority: entity.PriorityMedium,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task *entity.Task) error {
					assert.Equal(t, "Read chapter 3", task.Title)
					assert.Equal(t, entity.TaskStatusPending, task.Status)
					assert.Nil(t, task.CompletedAt)
					return nil
				})
			},
		},
		{
			Desc:     "explicit priority",
			Request:  service.CreateTaskRequest{Title: "Essay", Priority: entity.PriorityHigh, EstimatedMinutes: ptr(90)},
			Priority: entity.PriorityHigh,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "unknown priority",
			Request:      service.CreateTaskRequest{Title: "Essay", Priority: "urgent"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "zero estimate",
			Request:      service.CreateTaskRequest{Title: "Essay", EstimatedMinutes: ptr(0)},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "owner missing",
			Request: service.CreateTaskRequest{Title: "Essay"},
			Error:   errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrOwnerNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		task, err := serv.CreateTask(context.Background(), userID, &tc.Request)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		require.NoError(t, err, tc.Desc)
		assert.Equal(t, tc.Priority, task.Priority, tc.Desc)
		assert.Equal(t, userID, task.UserID, tc.Desc)
	}
}

func TestGetTaskErrors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTasksRepositoryI(ctrl)
	serv := service.NewTasksService(repo)
	taskID, userID := uuid.New(), uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uuid.New()}, nil)
	_, err := serv.GetTask(context.Background(), taskID, userID)
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)

	repo.EXPECT().GetByID(gomock.Any(), taskID).Return(nil, errors.New("db error"))
	_, err = serv.GetTask(context.Background(), taskID, userID)
	assert.Error(t, err)
	assert.False(t, errorvalues.IsNotFound(err))

	_, err = serv.GetUserTasks(context.Background(), userID, &service.ListTasksRequest{Status: "done"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestCompleteTaskIdempotent(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "tasks@example.com")
	serv := service.NewTasksService(store.Tasks, service.WithClock(clock.Now))
	ctx := context.Background()

	task, err := serv.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{Title: "Revise"})
	require.NoError(t, err)
	first, err := serv.CompleteTask(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, entity.TaskStatusCompleted, first.Status)

	clock.Advance(time.Hour)
	second, err := serv.CompleteTask(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, second.Status)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)

	// a status update to completed keeps the original stamp too
	third, err := serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Status: ptr(entity.TaskStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, *first.CompletedAt, *third.CompletedAt)
}

func TestTaskCompletedAtInvariant(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "invariant@example.com")
	serv := service.NewTasksService(store.Tasks, service.WithClock(clock.Now))
	ctx := context.Background()
	task, err := serv.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{Title: "Loop"})
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	for i := range 200 {
		clock.Advance(time.Minute)
		var got *entity.Task
		switch rnd.Intn(4) {
		case 0:
			got, err = serv.CompleteTask(ctx, task.ID, owner.ID)
		case 1:
			got, err = serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Status: ptr(entity.TaskStatusPending)})
		case 2:
			got, err = serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Status: ptr(entity.TaskStatusCompleted)})
		default:
			got, err = serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Priority: ptr(entity.PriorityLow)})
		}
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, got.Status == entity.TaskStatusCompleted, got.CompletedAt != nil, "step %d", i)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "partial@example.com")
	stranger := newOwner(t, store, "stranger@example.com")
	serv := service.NewTasksService(store.Tasks, service.WithClock(clock.Now))
	ctx := context.Background()
	due := entity.NewDate(2024, time.March, 10)
	task, err := serv.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{
		Title:       "Lab report",
		Description: ptr("physics"),
		Category:    ptr("school"),
		DueDate:     &due,
	})
	require.NoError(t, err)

	updated, err := serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Title: ptr("Lab report v2")})
	require.NoError(t, err)
	assert.Equal(t, "Lab report v2", updated.Title)
	assert.Equal(t, "physics", *updated.Description)
	assert.Equal(t, "school", *updated.Category)
	assert.Equal(t, due, *updated.DueDate)
	assert.Equal(t, entity.PriorityMedium, updated.Priority)

	_, err = serv.UpdateTask(ctx, task.ID, owner.ID, &service.UpdateTaskRequest{Title: ptr("  ")})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	_, err = serv.GetTask(ctx, task.ID, stranger.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	_, err = serv.CompleteTask(ctx, task.ID, stranger.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	assert.ErrorIs(t, serv.DeleteTask(ctx, task.ID, stranger.ID), errorvalues.ErrTaskNotFound)
	tasks, err := serv.GetUserTasks(ctx, stranger.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, serv.DeleteTask(ctx, task.ID, owner.ID))
	_, err = serv.GetTask(ctx, task.ID, owner.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
}
