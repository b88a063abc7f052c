package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

type TasksService struct {
	repo     repository.TasksRepositoryI
	locks    *keylock.Striped
	now      func() time.Time
	rewarder Rewarder
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, opts ...Option) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	o := buildOptions(opts)
	return &TasksService{
		repo:     tasksRepo,
		locks:    o.locks,
		now:      o.now,
		rewarder: o.rewarder,
	}
}

func (ts *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task := &entity.Task{
		UserID:           uid,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Priority:         req.Priority,
		Category:         req.Category,
		Status:           entity.TaskStatusPending,
		DueDate:          req.DueDate,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	err := ts.repo.Create(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) GetUserTasks(ctx context.Context, uid uuid.UUID, req *ListTasksRequest) ([]*entity.Task, error) {
	if req == nil {
		req = &ListTasksRequest{}
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tasks, err := ts.repo.GetByUserID(ctx, uid, entity.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) GetTask(ctx context.Context, taskID, uid uuid.UUID) (*entity.Task, error) {
	task, err := ts.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if task.UserID != uid {
		return nil, errorvalues.ErrTaskNotFound
	}
	return task, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, taskID, uid uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task, completed, err := ts.updateTask(ctx, taskID, uid, req)
	if err != nil {
		return nil, err
	}
	if completed {
		grantReward(ctx, ts.rewarder, uid, TaskReward(task))
	}
	return task, nil
}

// updateTask reports whether the update moved the task to completed.
func (ts *TasksService) updateTask(ctx context.Context, taskID, uid uuid.UUID, req *UpdateTaskRequest) (*entity.Task, bool, error) {
	unlock := ts.locks.Lock(taskID.String())
	defer unlock()

	task, err := ts.GetTask(ctx, taskID, uid)
	if err != nil {
		return nil, false, err
	}
	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = req.Category
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.EstimatedMinutes != nil {
		task.EstimatedMinutes = req.EstimatedMinutes
	}
	completed := false
	if req.Status != nil {
		completed = task.Status != entity.TaskStatusCompleted && *req.Status == entity.TaskStatusCompleted
		ts.setStatus(task, *req.Status)
	}
	task, err = ts.save(ctx, task)
	if err != nil {
		return nil, false, err
	}
	return task, completed, nil
}

func (ts *TasksService) CompleteTask(ctx context.Context, taskID, uid uuid.UUID) (*entity.Task, error) {
	task, completed, err := ts.completeTask(ctx, taskID, uid)
	if err != nil {
		return nil, err
	}
	if completed {
		grantReward(ctx, ts.rewarder, uid, TaskReward(task))
	}
	return task, nil
}

func (ts *TasksService) completeTask(ctx context.Context, taskID, uid uuid.UUID) (*entity.Task, bool, error) {
	unlock := ts.locks.Lock(taskID.String())
	defer unlock()

	task, err := ts.GetTask(ctx, taskID, uid)
	if err != nil {
		return nil, false, err
	}
	if task.Status == entity.TaskStatusCompleted {
		return task, false, nil
	}
	ts.setStatus(task, entity.TaskStatusCompleted)
	task, err = ts.save(ctx, task)
	if err != nil {
		return nil, false, err
	}
	return task, true, nil
}

// setStatus keeps CompletedAt set exactly while the task is completed.
func (ts *TasksService) setStatus(task *entity.Task, status string) {
	task.Status = status
	switch status {
	case entity.TaskStatusCompleted:
		if task.CompletedAt == nil {
			now := ts.now()
			task.CompletedAt = &now
		}
	default:
		task.CompletedAt = nil
	}
}

func (ts *TasksService) save(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	err := ts.repo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	updated, err := ts.repo.GetByID(ctx, task.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return updated, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, taskID, uid uuid.UUID) error {
	unlock := ts.locks.Lock(taskID.String())
	defer unlock()

	if _, err := ts.GetTask(ctx, taskID, uid); err != nil {
		return err
	}
	err := ts.repo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}
