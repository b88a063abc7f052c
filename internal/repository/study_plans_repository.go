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

type StudyPlansRepository struct {
	conn PgConnection
}

func NewStudyPlansRepoWithConn(conn PgConnection) *StudyPlansRepository {
	return &StudyPlansRepository{
		conn: conn,
	}
}

func (pr *StudyPlansRepository) Create(ctx context.Context, plan *entity.StudyPlan) error {
	subjects, err := marshalJSONB(plan.Subjects)
	if err != nil {
		return err
	}
	schedule, err := marshalJSONB(plan.DailySchedule)
	if err != nil {
		return err
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO study_plans (user_id, title, subjects, start_date, end_date, study_hours_per_day, daily_schedule, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		plan.UserID,
		plan.Title,
		subjects,
		plan.StartDate.Time(),
		plan.EndDate.Time(),
		plan.StudyHoursPerDay,
		schedule,
		plan.IsActive,
	)
	if err = row.Scan(&plan.ID, &plan.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating study plan db error: " + err.Error())
	}
	return nil
}

func (pr *StudyPlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StudyPlan, error) {
	row := pr.conn.QueryRow(ctx, `SELECT id, user_id, title, subjects, start_date, end_date, study_hours_per_day, daily_schedule, is_active, created_at
		FROM study_plans WHERE id = $1;`, id)
	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlanNotFound
		}
		return nil, errors.New("getting study plan by id error: " + err.Error())
	}
	return plan, nil
}

func (pr *StudyPlansRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.StudyPlan, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, title, subjects, start_date, end_date, study_hours_per_day, daily_schedule, is_active, created_at
		FROM study_plans WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting study plans by uid error: " + err.Error())
	}
	defer rows.Close()
	plans := make([]*entity.StudyPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, errors.New("unmarshalling study plan error: " + err.Error())
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return plans, nil
}

func (pr *StudyPlansRepository) UpdateSchedule(ctx context.Context, plan *entity.StudyPlan) error {
	schedule, err := marshalJSONB(plan.DailySchedule)
	if err != nil {
		return err
	}
	ct, err := pr.conn.Exec(ctx, `UPDATE study_plans SET daily_schedule = $1, is_active = $2 WHERE id = $3;`,
		schedule,
		plan.IsActive,
		plan.ID,
	)
	if err != nil {
		return errors.New("error updating study plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

func (pr *StudyPlansRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM study_plans WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting study plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

func scanPlan(row pgx.Row) (*entity.StudyPlan, error) {
	var plan entity.StudyPlan
	var subjects, schedule []byte
	var start, end time.Time
	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Title,
		&subjects,
		&start,
		&end,
		&plan.StudyHoursPerDay,
		&schedule,
		&plan.IsActive,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	plan.StartDate = entity.DateOf(start)
	plan.EndDate = entity.DateOf(end)
	if err = unmarshalJSONB(subjects, &plan.Subjects); err != nil {
		return nil, err
	}
	if err = unmarshalJSONB(schedule, &plan.DailySchedule); err != nil {
		return nil, err
	}
	return &plan, nil
}
