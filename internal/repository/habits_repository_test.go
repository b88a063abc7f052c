package repository_test

import (
	"context"
	"errors"
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

var (
	userID       = uuid.New()
	habitColumns = []string{"id", "user_id", "name", "description", "frequency", "target_count", "current_count", "streak", "icon",
		"count_date", "last_completed_on", "created_at", "updated_at"}
)

func habitRow(h *entity.Habit) []any {
	var countDate, lastCompleted *time.Time
	if !h.CountDate.IsZero() {
		t := h.CountDate.Time()
		countDate = &t
	}
	if !h.LastCompletedOn.IsZero() {
		t := h.LastCompletedOn.Time()
		lastCompleted = &t
	}
	return []any{h.ID, h.UserID, h.Name, h.Description, h.Frequency, h.TargetCount, h.CurrentCount, h.Streak, h.Icon,
		countDate, lastCompleted, h.CreatedAt, h.UpdatedAt}
}

func TestCreateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		UserID:      userID,
		Name:        "read",
		Description: "read 20 pages",
		Frequency:   entity.FrequencyDaily,
		TargetCount: 1,
		Icon:        "book",
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, name, description, frequency, target_count, icon)`)
	t.Run("successfully created", func(t *testing.T) {
		hid := uuid.New()
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name, habit.Description, habit.Frequency, habit.TargetCount, habit.Icon).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(hid, now, now))
		h := habit
		err := repo.Create(ctx, &h)
		assert.NoError(t, err)
		assert.Equal(t, hid, h.ID)
		assert.Equal(t, now, h.CreatedAt)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name, habit.Description, habit.Frequency, habit.TargetCount, habit.Icon).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		h := habit
		err := repo.Create(ctx, &h)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name, habit.Description, habit.Frequency, habit.TargetCount, habit.Icon).
			WillReturnError(errors.New("db error"))
		h := habit
		err := repo.Create(ctx, &h)
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "read",
		Frequency:       entity.FrequencyDaily,
		TargetCount:     2,
		CurrentCount:    1,
		Streak:          4,
		CountDate:       entity.NewDate(2024, time.March, 2),
		LastCompletedOn: entity.NewDate(2024, time.March, 1),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	query := regexp.QuoteMeta(`FROM habits WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows(habitColumns).AddRow(habitRow(&habit)...))
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, *result)
	})
	t.Run("never completed", func(t *testing.T) {
		fresh := habit
		fresh.CountDate = entity.Date{}
		fresh.LastCompletedOn = entity.Date{}
		mock.ExpectQuery(query).
			WithArgs(fresh.ID).
			WillReturnRows(pgxmock.NewRows(habitColumns).AddRow(habitRow(&fresh)...))
		result, err := repo.GetByID(ctx, fresh.ID)
		assert.NoError(t, err)
		assert.True(t, result.LastCompletedOn.IsZero())
		assert.True(t, result.CountDate.IsZero())
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, habit.ID)
		assert.Error(t, err)
	})
}

func TestGetHabitsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habits := []*entity.Habit{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "test_habit_1",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "test_habit_2",
			CreatedAt: time.Now().Add(time.Hour),
			UpdatedAt: time.Now().Add(time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "test_habit_3",
			CreatedAt: time.Now().Add(time.Hour * 2),
			UpdatedAt: time.Now().Add(time.Hour * 2),
		},
	}
	query := regexp.QuoteMeta(`FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		limit := 3
		offset := 0
		rows := pgxmock.NewRows(habitColumns)
		for _, h := range habits {
			rows.AddRow(habitRow(h)...)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, len(habits), len(result))
		for i := range result {
			assert.Equal(t, *habits[i], *result[i])
		}
	})
	t.Run("used limit and offset", func(t *testing.T) {
		limit := 1
		offset := 1
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(pgxmock.NewRows(habitColumns).AddRow(habitRow(habits[1])...))
		result, err := repo.GetByUserID(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, *habits[1], *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		limit := 1
		offset := 1
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, limit, offset)
		assert.Error(t, err)
	})
}

func TestUpdateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE habits SET name = $1`)
	habit := entity.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "test_habit",
		Description:     "blah blah blah",
		Frequency:       entity.FrequencyWeekly,
		TargetCount:     3,
		CurrentCount:    3,
		Streak:          2,
		CountDate:       entity.NewDate(2024, time.May, 6),
		LastCompletedOn: entity.NewDate(2024, time.May, 6),
	}
	countDate := habit.CountDate.Time()
	lastCompleted := habit.LastCompletedOn.Time()
	args := []any{habit.Name, habit.Description, habit.Frequency, habit.TargetCount, habit.CurrentCount,
		habit.Streak, habit.Icon, &countDate, &lastCompleted, habit.ID}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &habit)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestDeleteHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

func TestAddHabitLogCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO habit_logs (habit_id, log_date, count) VALUES ($1, $2, $3)`)
	hid := uuid.New()
	day := entity.NewDate(2024, time.January, 10)
	ctx := context.Background()
	t.Run("first log of the day", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, day.Time(), 1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		total, err := repo.AddCount(ctx, hid, day, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
	})
	t.Run("accumulates", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, day.Time(), 2).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		total, err := repo.AddCount(ctx, hid, day, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
	})
	t.Run("unknown habit", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, day.Time(), 1).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.AddCount(ctx, hid, day, 1)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, day.Time(), 1).
			WillReturnError(errors.New("db error"))
		_, err := repo.AddCount(ctx, hid, day, 1)
		assert.Error(t, err)
	})
}

func TestGetHabitLogsByRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT habit_id, log_date, count FROM habit_logs WHERE habit_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date;`)
	hid := uuid.New()
	from := entity.NewDate(2024, time.January, 1)
	to := entity.NewDate(2024, time.January, 7)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, from.Time(), to.Time()).
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "log_date", "count"}).
				AddRow(hid, from.Time(), 1).
				AddRow(hid, from.AddDays(3).Time(), 2))
		logs, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.NoError(t, err)
		assert.Equal(t, []entity.HabitLog{
			{HabitID: hid, Date: from, Count: 1},
			{HabitID: hid, Date: from.AddDays(3), Count: 2},
		}, logs)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, from.Time(), to.Time()).
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "log_date", "count"}))
		logs, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.NoError(t, err)
		assert.Empty(t, logs)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, from.Time(), to.Time()).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.Error(t, err)
	})
}

func TestHabitLogsStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitLogsRepoWithConn(mock)
	hid := uuid.New()
	ctx := context.Background()
	t.Run("last log date", func(t *testing.T) {
		last := entity.NewDate(2024, time.February, 29)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT log_date FROM habit_logs WHERE habit_id = $1 ORDER BY log_date DESC LIMIT 1;`)).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"log_date"}).AddRow(last.Time()))
		result, err := repo.GetLastLogDate(ctx, hid)
		assert.NoError(t, err)
		if assert.NotNil(t, result) {
			assert.Equal(t, last, *result)
		}
	})
	t.Run("no logs yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT log_date FROM habit_logs`)).
			WithArgs(hid).
			WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetLastLogDate(ctx, hid)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM habit_logs WHERE habit_id = $1;`)).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
		count, err := repo.CountByHabitID(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, 5, count)
	})
	t.Run("delete by habit", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM habit_logs WHERE habit_id = $1;`)).
			WithArgs(hid).
			WillReturnResult(pgxmock.NewResult("DELETE", 5))
		removed, err := repo.DeleteByHabitID(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, 5, removed)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
