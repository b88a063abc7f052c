package memory

import (
	"context"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type TasksRepository struct {
	db *db
}

func (tr *TasksRepository) Create(_ context.Context, task *entity.Task) error {
	tr.db.mu.Lock()
	defer tr.db.mu.Unlock()
	if !tr.db.userExists(task.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	task.ID = uuid.New()
	task.CreatedAt = tr.db.now()
	task.UpdatedAt = task.CreatedAt
	tr.db.tasks.insert(task.ID, task.Clone())
	return nil
}

func (tr *TasksRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	tr.db.mu.RLock()
	defer tr.db.mu.RUnlock()
	t, ok := tr.db.tasks.get(id)
	if !ok {
		return nil, errorvalues.ErrTaskNotFound
	}
	return t.Clone(), nil
}

func (tr *TasksRepository) GetByUserID(_ context.Context, uid uuid.UUID, filter entity.TaskFilter) ([]*entity.Task, error) {
	tr.db.mu.RLock()
	defer tr.db.mu.RUnlock()
	tasks := make([]*entity.Task, 0)
	tr.db.tasks.each(func(t *entity.Task) {
		if t.UserID != uid {
			return
		}
		if filter.Status != "" && t.Status != filter.Status {
			return
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			return
		}
		tasks = append(tasks, t.Clone())
	})
	return tasks, nil
}

func (tr *TasksRepository) Update(_ context.Context, task *entity.Task) error {
	tr.db.mu.Lock()
	defer tr.db.mu.Unlock()
	stored, ok := tr.db.tasks.get(task.ID)
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	updated := task.Clone()
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = tr.db.now()
	task.UpdatedAt = updated.UpdatedAt
	*stored = *updated
	return nil
}

func (tr *TasksRepository) Delete(_ context.Context, id uuid.UUID) error {
	tr.db.mu.Lock()
	defer tr.db.mu.Unlock()
	if !tr.db.tasks.remove(id) {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
