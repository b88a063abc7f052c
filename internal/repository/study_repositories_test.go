package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestStudyPlansRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStudyPlansRepoWithConn(mock)
	start := entity.NewDate(2024, time.January, 1)
	plan := entity.StudyPlan{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Finals",
		Subjects: []entity.Subject{
			{Name: "Math", Topics: []string{"Algebra"}, Priority: entity.PriorityHigh, HoursAllocated: 10},
		},
		StartDate:        start,
		EndDate:          start.AddDays(1),
		StudyHoursPerDay: 2,
		DailySchedule: []entity.DailySchedule{
			{Date: start, Items: []entity.ScheduleItem{{Subject: "Math", Topic: "Algebra", DurationMinutes: 60, Priority: entity.PriorityHigh}}, TotalHours: 1},
			{Date: start.AddDays(1), Items: []entity.ScheduleItem{{Subject: "Math", Topic: "Algebra", DurationMinutes: 60, Priority: entity.PriorityHigh}}, TotalHours: 1},
		},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	columns := []string{"id", "user_id", "title", "subjects", "start_date", "end_date", "study_hours_per_day", "daily_schedule", "is_active", "created_at"}
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		p := plan
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO study_plans`)).
			WithArgs(plan.UserID, plan.Title, pgxmock.AnyArg(), start.Time(), start.AddDays(1).Time(), plan.StudyHoursPerDay,
				pgxmock.AnyArg(), true).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(plan.ID, plan.CreatedAt))
		assert.NoError(t, repo.Create(ctx, &p))
	})
	t.Run("get by id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM study_plans WHERE id = $1;`)).
			WithArgs(plan.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(plan.ID, plan.UserID, plan.Title, mustJSON(t, plan.Subjects),
				start.Time(), start.AddDays(1).Time(), plan.StudyHoursPerDay, mustJSON(t, plan.DailySchedule), true, plan.CreatedAt))
		result, err := repo.GetByID(ctx, plan.ID)
		assert.NoError(t, err)
		assert.Equal(t, plan, *result)
	})
	t.Run("get by id not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM study_plans WHERE id = $1;`)).
			WithArgs(plan.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, plan.ID)
		assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
	})
	t.Run("update schedule", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE study_plans SET daily_schedule = $1, is_active = $2 WHERE id = $3;`)).
			WithArgs(pgxmock.AnyArg(), true, plan.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateSchedule(ctx, &plan))
	})
	t.Run("delete not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM study_plans WHERE id = $1;`)).
			WithArgs(plan.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, plan.ID), errorvalues.ErrPlanNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudySessionsRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStudySessionsRepoWithConn(mock)
	started := time.Now().Add(-time.Hour)
	session := entity.StudySession{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   "Physics",
		StartTime: started,
		Status:    entity.SessionActive,
	}
	columns := []string{"id", "user_id", "subject", "start_time", "end_time", "duration_seconds", "focus_score", "notes", "status"}
	sessionRow := func(s entity.StudySession) *pgxmock.Rows {
		return pgxmock.NewRows(columns).AddRow(s.ID, s.UserID, s.Subject, s.StartTime, s.EndTime, s.DurationSeconds,
			s.FocusScore, s.Notes, s.Status)
	}
	insert := regexp.QuoteMeta(`INSERT INTO study_sessions (user_id, subject, start_time, status)`)
	ctx := context.Background()
	t.Run("start", func(t *testing.T) {
		s := session
		mock.ExpectQuery(insert).
			WithArgs(s.UserID, s.Subject, s.StartTime, s.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(session.ID))
		assert.NoError(t, repo.Create(ctx, &s))
		assert.Equal(t, session.ID, s.ID)
	})
	t.Run("second active session", func(t *testing.T) {
		s := session
		mock.ExpectQuery(insert).
			WithArgs(s.UserID, s.Subject, s.StartTime, s.Status).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Create(ctx, &s), errorvalues.ErrActiveSessionExists)
	})
	t.Run("active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM study_sessions WHERE user_id = $1 AND status = $2 LIMIT 1;`)).
			WithArgs(userID, entity.SessionActive).
			WillReturnRows(sessionRow(session))
		result, err := repo.GetActive(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, session, *result)
	})
	t.Run("no active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM study_sessions WHERE user_id = $1 AND status = $2 LIMIT 1;`)).
			WithArgs(userID, entity.SessionActive).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetActive(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	t.Run("end", func(t *testing.T) {
		ended := started.Add(30 * time.Minute)
		s := session
		s.EndTime = &ended
		s.DurationSeconds = 1800
		s.FocusScore = ptr(100)
		s.Status = entity.SessionCompleted
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE study_sessions SET end_time = $1`)).
			WithArgs(s.EndTime, s.DurationSeconds, s.FocusScore, s.Notes, s.Status, s.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &s))
	})
	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY start_time DESC LIMIT $2;`)).
			WithArgs(userID, 10).
			WillReturnRows(sessionRow(session))
		result, err := repo.GetByUserID(ctx, userID, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
