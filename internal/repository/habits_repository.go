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

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) error {
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, name, description, frequency, target_count, icon)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.TargetCount,
		habit.Icon,
	)
	if err := row.Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("creating habit db error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT id, user_id, name, description, frequency, target_count, current_count, streak, icon,
		count_date, last_completed_on, created_at, updated_at FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, name, description, frequency, target_count, current_count, streak, icon,
		count_date, last_completed_on, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET name = $1, description = $2, frequency = $3, target_count = $4, current_count = $5,
		streak = $6, icon = $7, count_date = $8, last_completed_on = $9, updated_at = NOW() WHERE id = $10;`,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.TargetCount,
		habit.CurrentCount,
		habit.Streak,
		habit.Icon,
		dateValueArg(habit.CountDate),
		dateValueArg(habit.LastCompletedOn),
		habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var h entity.Habit
	var countDate, lastCompleted *time.Time
	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Description,
		&h.Frequency,
		&h.TargetCount,
		&h.CurrentCount,
		&h.Streak,
		&h.Icon,
		&countDate,
		&lastCompleted,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	h.CountDate = dateValue(countDate)
	h.LastCompletedOn = dateValue(lastCompleted)
	return &h, nil
}
