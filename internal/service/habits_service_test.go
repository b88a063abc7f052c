package service_test

import (
	"context"
	"errors"
	"sync"
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

func TestLogHabit(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	today := clock.Today()
	habitID := uuid.New()
	userID := uuid.New()
	baseHabit := entity.Habit{
		ID:              habitID,
		UserID:          userID,
		Name:            "read",
		Frequency:       entity.FrequencyDaily,
		TargetCount:     2,
		CurrentCount:    0,
		Streak:          3,
		CountDate:       today,
		LastCompletedOn: today.AddDays(-1),
	}
	testCases := []struct {
		Desc         string
		Habit        func() entity.Habit
		Request      service.LogHabitRequest
		Day          entity.Date
		Total        int
		Error        error
		WantStreak   int
		WantCount    int
		WantLast     entity.Date
		MockPrepFunc func(habits *mocks.MockHabitsRepositoryI, logs *mocks.MockHabitLogsRepositoryI, h entity.Habit, day entity.Date, count, total int)
	}{
		{
			Desc:       "below target keeps streak",
			Habit:      func() entity.Habit { return baseHabit },
			Request:    service.LogHabitRequest{},
			Day:        today,
			Total:      1,
			WantStreak: 3,
			WantCount:  1,
			WantLast:   today.AddDays(-1),
		},
		{
			Desc:       "crossing target extends streak",
			Habit:      func() entity.Habit { return baseHabit },
			Request:    service.LogHabitRequest{Count: 2},
			Day:        today,
			Total:      2,
			WantStreak: 4,
			WantCount:  2,
			WantLast:   today,
		},
		{
			Desc: "logging past target changes nothing",
			Habit: func() entity.Habit {
				h := baseHabit
				h.Streak = 4
				h.LastCompletedOn = today
				return h
			},
			Request:    service.LogHabitRequest{Count: 1},
			Day:        today,
			Total:      3,
			WantStreak: 4,
			WantCount:  3,
			WantLast:   today,
		},
		{
			Desc: "gap restarts streak",
			Habit: func() entity.Habit {
				h := baseHabit
				h.LastCompletedOn = today.AddDays(-3)
				return h
			},
			Request:    service.LogHabitRequest{Count: 2},
			Day:        today,
			Total:      2,
			WantStreak: 1,
			WantCount:  2,
			WantLast:   today,
		},
		{
			Desc: "weekly habit counts once per period",
			Habit: func() entity.Habit {
				h := baseHabit
				h.Frequency = entity.FrequencyWeekly
				h.LastCompletedOn = today.AddDays(-6)
				return h
			},
			Request:    service.LogHabitRequest{Count: 2},
			Day:        today,
			Total:      2,
			WantStreak: 3,
			WantCount:  2,
			WantLast:   today.AddDays(-6),
		},
		{
			Desc: "weekly habit extends in next period",
			Habit: func() entity.Habit {
				h := baseHabit
				h.Frequency = entity.FrequencyWeekly
				h.LastCompletedOn = today.AddDays(-9)
				return h
			},
			Request:    service.LogHabitRequest{Count: 2},
			Day:        today,
			Total:      2,
			WantStreak: 4,
			WantCount:  2,
			WantLast:   today,
		},
		{
			Desc: "weekly habit restarts after missed period",
			Habit: func() entity.Habit {
				h := baseHabit
				h.Frequency = entity.FrequencyWeekly
				h.LastCompletedOn = today.AddDays(-14)
				return h
			},
			Request:    service.LogHabitRequest{Count: 2},
			Day:        today,
			Total:      2,
			WantStreak: 1,
			WantCount:  2,
			WantLast:   today,
		},
		{
			Desc:       "backfilled day keeps streak",
			Habit:      func() entity.Habit { return baseHabit },
			Request:    service.LogHabitRequest{Count: 2, Date: ptr(today.AddDays(-10))},
			Day:        today.AddDays(-10),
			Total:      2,
			WantStreak: 3,
			WantCount:  0,
			WantLast:   today.AddDays(-1),
		},
		{
			Desc:       "oldest day in history window",
			Habit:      func() entity.Habit { return baseHabit },
			Request:    service.LogHabitRequest{Count: 2, Date: ptr(today.AddDays(-364))},
			Day:        today.AddDays(-364),
			Total:      2,
			WantStreak: 3,
			WantCount:  0,
			WantLast:   today.AddDays(-1),
		},
		{
			Desc:    "date before history window",
			Habit:   func() entity.Habit { return baseHabit },
			Request: service.LogHabitRequest{Date: ptr(today.AddDays(-365))},
			Error:   errorvalues.ErrValidation,
			MockPrepFunc: func(habits *mocks.MockHabitsRepositoryI, logs *mocks.MockHabitLogsRepositoryI, h entity.Habit, day entity.Date, count, total int) {
			},
		},
		{
			Desc:    "future date",
			Habit:   func() entity.Habit { return baseHabit },
			Request: service.LogHabitRequest{Date: ptr(today.AddDays(1))},
			Error:   errorvalues.ErrLogDateNotAllowed,
			MockPrepFunc: func(habits *mocks.MockHabitsRepositoryI, logs *mocks.MockHabitLogsRepositoryI, h entity.Habit, day entity.Date, count, total int) {
			},
		},
		{
			Desc:    "negative count",
			Habit:   func() entity.Habit { return baseHabit },
			Request: service.LogHabitRequest{Count: -1},
			Error:   errorvalues.ErrValidation,
			MockPrepFunc: func(habits *mocks.MockHabitsRepositoryI, logs *mocks.MockHabitLogsRepositoryI, h entity.Habit, day entity.Date, count, total int) {
			},
		},
		{
			Desc: "wrong owner",
			Habit: func() entity.Habit {
				h := baseHabit
				h.UserID = uuid.New()
				return h
			},
			Request: service.LogHabitRequest{},
			Error:   errorvalues.ErrHabitNotFound,
			MockPrepFunc: func(habits *mocks.MockHabitsRepositoryI, logs *mocks.MockHabitLogsRepositoryI, h entity.Habit, day entity.Date, count, total int) {
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&h, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
			logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
			serv := service.NewHabitsService(habitsRepo, logsRepo, service.WithClock(clock.Now))
			h := tc.Habit()
			count := max(tc.Request.Count, 1)
			if tc.MockPrepFunc != nil {
				tc.MockPrepFunc(habitsRepo, logsRepo, h, tc.Day, count, tc.Total)
			} else {
				var saved entity.Habit
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&h, nil)
				logsRepo.EXPECT().AddCount(gomock.Any(), habitID, tc.Day, count).Return(tc.Total, nil)
				habitsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, habit *entity.Habit) error {
					saved = *habit
					return nil
				})
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).DoAndReturn(func(context.Context, uuid.UUID) (*entity.Habit, error) {
					return &saved, nil
				})
			}
			res, err := serv.LogHabit(context.Background(), habitID, userID, &tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.WantStreak, res.Streak)
			assert.Equal(t, tc.WantCount, res.CurrentCount)
			assert.Equal(t, tc.WantLast, res.LastCompletedOn)
		})
	}
}

func TestDeleteHabitRemovesLogs(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo, logsRepo)
	habitID, userID := uuid.New(), uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			MockPrepFunc: func() {
				gomock.InOrder(
					habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, UserID: userID}, nil),
					logsRepo.EXPECT().DeleteByHabitID(gomock.Any(), habitID).Return(3, nil),
					habitsRepo.EXPECT().Delete(gomock.Any(), habitID).Return(nil),
				)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:  "logs repository error",
			Error: errors.New("any"),
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, UserID: userID}, nil)
				logsRepo.EXPECT().DeleteByHabitID(gomock.Any(), habitID).Return(0, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := serv.DeleteHabit(context.Background(), habitID, userID)
		switch {
		case tc.Error == nil:
			assert.NoError(t, err, tc.Desc)
		case errors.Is(tc.Error, errorvalues.ErrHabitNotFound):
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
		default:
			assert.Error(t, err, tc.Desc)
		}
	}
}

func TestHabitStreakOncePerDay(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "habits@example.com")
	serv := service.NewHabitsService(store.Habits, store.HabitLogs, service.WithClock(clock.Now))
	ctx := context.Background()

	habit, err := serv.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "water", TargetCount: 3})
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyDaily, habit.Frequency)
	assert.Zero(t, habit.Streak)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	got, err := serv.GetHabit(ctx, habit.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, 10, got.CurrentCount)

	clock.Advance(24 * time.Hour)
	got, err = serv.GetHabit(ctx, habit.ID, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CurrentCount, "count belongs to yesterday")

	got, err = serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Streak)

	clock.Advance(3 * 24 * time.Hour)
	got, err = serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{Count: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Streak)

	history, err := serv.GetHabitHistory(ctx, habit.ID, owner.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []int{10, 3, 5}, []int{history[0].Count, history[1].Count, history[2].Count})
	history, err = serv.GetHabitHistory(ctx, habit.ID, owner.ID, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	_, err = serv.GetHabitHistory(ctx, habit.ID, owner.ID, 366)
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	stats, err := serv.GetHabitStats(ctx, habit.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalLogs)
	require.NotNil(t, stats.LastLogDate)
	assert.Equal(t, clock.Today(), *stats.LastLogDate)

	require.NoError(t, serv.DeleteHabit(ctx, habit.ID, owner.ID))
	count, err := store.HabitLogs.CountByHabitID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	_, err = serv.GetHabitHistory(ctx, habit.ID, owner.ID, 30)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
}

func TestHabitOwnershipIsolation(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "owner@example.com")
	stranger := newOwner(t, store, "stranger@example.com")
	serv := service.NewHabitsService(store.Habits, store.HabitLogs, service.WithClock(clock.Now))
	ctx := context.Background()

	habit, err := serv.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "run"})
	require.NoError(t, err)

	_, err = serv.GetHabit(ctx, habit.ID, stranger.ID)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	_, err = serv.LogHabit(ctx, habit.ID, stranger.ID, &service.LogHabitRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	_, err = serv.UpdateHabit(ctx, habit.ID, stranger.ID, &service.UpdateHabitRequest{Name: ptr("mine")})
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	assert.ErrorIs(t, serv.DeleteHabit(ctx, habit.ID, stranger.ID), errorvalues.ErrHabitNotFound)
	habits, err := serv.GetUserHabits(ctx, stranger.ID, service.PaginationOpts{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, habits)

	updated, err := serv.UpdateHabit(ctx, habit.ID, owner.ID, &service.UpdateHabitRequest{TargetCount: ptr(4), Icon: ptr("shoe")})
	require.NoError(t, err)
	assert.Equal(t, "run", updated.Name)
	assert.Equal(t, 4, updated.TargetCount)
	assert.Equal(t, "shoe", updated.Icon)

	_, err = serv.CreateHabit(ctx, uuid.New(), &service.CreateHabitRequest{Name: "ghost"})
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestHabitBackfillKeepsStreak(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "backfill@example.com")
	serv := service.NewHabitsService(store.Habits, store.HabitLogs, service.WithClock(clock.Now))
	ctx := context.Background()
	today := clock.Today()

	habit, err := serv.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "flashcards"})
	require.NoError(t, err)
	got, err := serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, got.Streak)

	for _, back := range []int{20, 40, 60, 80} {
		got, err = serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{Date: ptr(today.AddDays(-back))})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Streak, "backfilled %d days", back)
		assert.Equal(t, today, got.LastCompletedOn)
	}

	_, err = serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{Date: ptr(today.AddDays(-100 * 365))})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	assert.ErrorIs(t, err, errorvalues.ErrLogDateNotAllowed)

	stats, err := serv.GetHabitStats(ctx, habit.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 5, stats.TotalLogs)
}

func TestWeeklyHabitStreak(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "weekly@example.com")
	serv := service.NewHabitsService(store.Habits, store.HabitLogs, service.WithClock(clock.Now))
	ctx := context.Background()
	day := 24 * time.Hour

	habit, err := serv.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "review", Frequency: entity.FrequencyWeekly})
	require.NoError(t, err)

	steps := []struct {
		Advance time.Duration
		Streak  int
	}{
		{0, 1},
		{2 * day, 1},
		{3 * day, 1},
		{2 * day, 2},
		{8 * day, 3},
		{14 * day, 1},
	}
	for i, step := range steps {
		clock.Advance(step.Advance)
		got, err := serv.LogHabit(ctx, habit.ID, owner.ID, &service.LogHabitRequest{})
		require.NoError(t, err)
		assert.Equal(t, step.Streak, got.Streak, "step %d", i)
	}
}
