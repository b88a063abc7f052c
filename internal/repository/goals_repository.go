package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, title, target, current, unit, period, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;`,
		goal.UserID,
		goal.Title,
		goal.Target,
		goal.Current,
		goal.Unit,
		goal.Period,
		goal.Status,
	)
	if err := row.Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating goal db error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT id, user_id, title, target, current, unit, period, status, created_at, updated_at
		FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, user_id, title, target, current, unit, period, status, created_at, updated_at
		FROM goals WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting goals by uid error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `UPDATE goals SET title = $1, target = $2, current = $3, status = $4, updated_at = NOW()
		WHERE id = $5 RETURNING updated_at;`,
		goal.Title,
		goal.Target,
		goal.Current,
		goal.Status,
		goal.ID,
	)
	if err := row.Scan(&goal.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("error updating goal: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var goal entity.Goal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Target,
		&goal.Current,
		&goal.Unit,
		&goal.Period,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
