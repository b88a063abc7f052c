package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, title, description, priority, category, status, due_date, estimated_minutes, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at;`,
		task.UserID,
		task.Title,
		task.Description,
		task.Priority,
		task.Category,
		task.Status,
		dateArg(task.DueDate),
		task.EstimatedMinutes,
		task.CompletedAt,
	)
	if err := row.Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT id, user_id, title, description, priority, category, status, due_date, estimated_minutes, completed_at, created_at, updated_at
		FROM tasks WHERE id = $1;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return task, nil
}

func (tr *TasksRepository) GetByUserID(ctx context.Context, uid uuid.UUID, filter entity.TaskFilter) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, title, description, priority, category, status, due_date, estimated_minutes, completed_at, created_at, updated_at
		FROM tasks WHERE user_id = $1 AND ($2 = '' OR status = $2) AND ($3 = '' OR priority = $3) ORDER BY created_at;`,
		uid, filter.Status, filter.Priority)
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, priority = $3, category = $4, status = $5,
		due_date = $6, estimated_minutes = $7, completed_at = $8, updated_at = NOW() WHERE id = $9;`,
		task.Title,
		task.Description,
		task.Priority,
		task.Category,
		task.Status,
		dateArg(task.DueDate),
		task.EstimatedMinutes,
		task.CompletedAt,
		task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	var dueDate *time.Time
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Category,
		&task.Status,
		&dueDate,
		&task.EstimatedMinutes,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.DueDate = datePtr(dueDate)
	return &task, nil
}
