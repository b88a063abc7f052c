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

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	return &HabitLogsRepository{
		conn: conn,
	}
}

func (logsRepo *HabitLogsRepository) AddCount(ctx context.Context, habitID uuid.UUID, date entity.Date, count int) (int, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`INSERT INTO habit_logs (habit_id, log_date, count) VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, log_date) DO UPDATE SET count = habit_logs.count + EXCLUDED.count RETURNING count;`,
		habitID,
		date.Time(),
		count,
	)
	var total int
	if err := row.Scan(&total); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case pgForeignKeyViolation:
				return 0, errorvalues.ErrHabitNotFound
			}
		}
		return 0, errors.New("adding habit log error: " + err.Error())
	}
	return total, nil
}

func (logsRepo *HabitLogsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to entity.Date) ([]entity.HabitLog, error) {
	rows, err := logsRepo.conn.Query(
		ctx,
		`SELECT habit_id, log_date, count FROM habit_logs WHERE habit_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date;`,
		habitID,
		from.Time(),
		to.Time(),
	)
	if err != nil {
		return nil, errors.New("getting logs for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitLog, 0, 2)
	for rows.Next() {
		var log entity.HabitLog
		var date time.Time
		if err = rows.Scan(&log.HabitID, &date, &log.Count); err != nil {
			return nil, errors.New("log row parsing error: " + err.Error())
		}
		log.Date = entity.DateOf(date)
		result = append(result, log)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected log rows error: " + err.Error())
	}
	return result, nil
}

func (logsRepo *HabitLogsRepository) DeleteByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	ct, err := logsRepo.conn.Exec(ctx, `DELETE FROM habit_logs WHERE habit_id = $1;`, habitID)
	if err != nil {
		return 0, errors.New("deleting habit logs error: " + err.Error())
	}
	return int(ct.RowsAffected()), nil
}

func (logsRepo *HabitLogsRepository) GetLastLogDate(ctx context.Context, habitID uuid.UUID) (*entity.Date, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT log_date FROM habit_logs WHERE habit_id = $1 ORDER BY log_date DESC LIMIT 1;`,
		habitID,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last log date error: " + err.Error())
	}
	d := entity.DateOf(date)
	return &d, nil
}

func (logsRepo *HabitLogsRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_logs WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting logs: " + err.Error())
	}
	return count, nil
}
