package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type HabitsRepository struct {
	db *db
}

func (hr *HabitsRepository) Create(_ context.Context, habit *entity.Habit) error {
	hr.db.mu.Lock()
	defer hr.db.mu.Unlock()
	if !hr.db.userExists(habit.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	habit.ID = uuid.New()
	habit.CreatedAt = hr.db.now()
	habit.UpdatedAt = habit.CreatedAt
	hr.db.habits.insert(habit.ID, habit.Clone())
	return nil
}

func (hr *HabitsRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	hr.db.mu.RLock()
	defer hr.db.mu.RUnlock()
	h, ok := hr.db.habits.get(id)
	if !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	return h.Clone(), nil
}

func (hr *HabitsRepository) GetByUserID(_ context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	hr.db.mu.RLock()
	defer hr.db.mu.RUnlock()
	habits := make([]*entity.Habit, 0)
	skipped := 0
	hr.db.habits.each(func(h *entity.Habit) {
		if h.UserID != uid || len(habits) >= limit {
			return
		}
		if skipped < offset {
			skipped++
			return
		}
		habits = append(habits, h.Clone())
	})
	return habits, nil
}

func (hr *HabitsRepository) Update(_ context.Context, habit *entity.Habit) error {
	hr.db.mu.Lock()
	defer hr.db.mu.Unlock()
	stored, ok := hr.db.habits.get(habit.ID)
	if !ok {
		return errorvalues.ErrHabitNotFound
	}
	updated := habit.Clone()
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = hr.db.now()
	habit.UpdatedAt = updated.UpdatedAt
	*stored = *updated
	return nil
}

// Delete removes the habit and its logs.
func (hr *HabitsRepository) Delete(_ context.Context, id uuid.UUID) error {
	hr.db.mu.Lock()
	defer hr.db.mu.Unlock()
	if !hr.db.habits.remove(id) {
		return errorvalues.ErrHabitNotFound
	}
	delete(hr.db.logs, id)
	return nil
}

type HabitLogsRepository struct {
	db *db
}

func (lr *HabitLogsRepository) AddCount(_ context.Context, habitID uuid.UUID, date entity.Date, count int) (int, error) {
	lr.db.mu.Lock()
	defer lr.db.mu.Unlock()
	if _, ok := lr.db.habits.get(habitID); !ok {
		return 0, errorvalues.ErrHabitNotFound
	}
	days, ok := lr.db.logs[habitID]
	if !ok {
		days = make(map[entity.Date]int)
		lr.db.logs[habitID] = days
	}
	days[date] += count
	return days[date], nil
}

func (lr *HabitLogsRepository) GetByHabitAndDateRange(_ context.Context, habitID uuid.UUID, from, to entity.Date) ([]entity.HabitLog, error) {
	lr.db.mu.RLock()
	defer lr.db.mu.RUnlock()
	result := make([]entity.HabitLog, 0, 2)
	for day, count := range lr.db.logs[habitID] {
		if day.Before(from) || day.After(to) {
			continue
		}
		result = append(result, entity.HabitLog{HabitID: habitID, Date: day, Count: count})
	}
	slices.SortFunc(result, func(a, b entity.HabitLog) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return result, nil
}

func (lr *HabitLogsRepository) DeleteByHabitID(_ context.Context, habitID uuid.UUID) (int, error) {
	lr.db.mu.Lock()
	defer lr.db.mu.Unlock()
	removed := len(lr.db.logs[habitID])
	delete(lr.db.logs, habitID)
	return removed, nil
}

func (lr *HabitLogsRepository) GetLastLogDate(_ context.Context, habitID uuid.UUID) (*entity.Date, error) {
	lr.db.mu.RLock()
	defer lr.db.mu.RUnlock()
	var last *entity.Date
	for day := range lr.db.logs[habitID] {
		if last == nil || day.After(*last) {
			d := day
			last = &d
		}
	}
	return last, nil
}

func (lr *HabitLogsRepository) CountByHabitID(_ context.Context, habitID uuid.UUID) (int, error) {
	lr.db.mu.RLock()
	defer lr.db.mu.RUnlock()
	return len(lr.db.logs[habitID]), nil
}
