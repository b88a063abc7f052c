package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const (
	DefaultHistoryDays = 30
	maxHistoryDays     = 365
)

type HabitsService struct {
	repo     repository.HabitsRepositoryI
	logsRepo repository.HabitLogsRepositoryI
	locks    *keylock.Striped
	opts     options
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI, opts ...Option) *HabitsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on habits service provided nil repos")
	}
	o := buildOptions(opts)
	return &HabitsService{
		repo:     habitsRepo,
		logsRepo: logsRepo,
		locks:    o.locks,
		opts:     o,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
		Icon:        req.Icon,
	}
	if h.Frequency == "" {
		h.Frequency = entity.FrequencyDaily
	}
	if h.TargetCount == 0 {
		h.TargetCount = 1
	}
	err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return &h, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	today := hs.opts.today()
	for _, h := range habits {
		presentHabit(h, today)
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.ownedHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	presentHabit(habit, hs.opts.today())
	return habit, nil
}

func (hs *HabitsService) ownedHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != uid {
		return nil, errorvalues.ErrHabitNotFound
	}
	return habit, nil
}

// presentHabit zeroes the stored count once its day is over, so the habit
// always reports today's log.
func presentHabit(h *entity.Habit, today entity.Date) {
	if !h.CountDate.Equal(today) {
		h.CurrentCount = 0
	}
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, uid uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unlock := hs.locks.Lock(habitID.String())
	defer unlock()

	habit, err := hs.ownedHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		habit.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Frequency != nil {
		habit.Frequency = *req.Frequency
	}
	if req.TargetCount != nil {
		habit.TargetCount = *req.TargetCount
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}
	return hs.save(ctx, habit)
}

func (hs *HabitsService) save(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	err := hs.repo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	updated, err := hs.repo.GetByID(ctx, habit.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	presentHabit(updated, hs.opts.today())
	return updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error {
	unlock := hs.locks.Lock(habitID.String())
	defer unlock()

	if _, err := hs.ownedHabit(ctx, habitID, uid); err != nil {
		return err
	}
	if _, err := hs.logsRepo.DeleteByHabitID(ctx, habitID); err != nil {
		return errors.New("habit logs repository error: " + err.Error())
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) LogHabit(ctx context.Context, habitID, uid uuid.UUID, req *LogHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	today := hs.opts.today()
	day := today
	if req.Date != nil && !req.Date.IsZero() {
		day = *req.Date
	}
	if day.After(today) || day.Before(today.AddDays(1-maxHistoryDays)) {
		return nil, errors.Join(errorvalues.ErrValidation, errorvalues.ErrLogDateNotAllowed)
	}

	unlock := hs.locks.Lock(habitID.String())
	defer unlock()

	habit, err := hs.ownedHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	total, err := hs.logsRepo.AddCount(ctx, habitID, day, count)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	if day.Equal(today) {
		habit.CurrentCount = total
		habit.CountDate = today
	}
	if prev := total - count; prev < habit.TargetCount && total >= habit.TargetCount {
		advanceStreak(habit, day)
	}
	return hs.save(ctx, habit)
}

// advanceStreak records that the target was reached on day. The streak grows
// once per period: a completion less than a period after the last one belongs
// to the same period, and a completion two or more periods later starts a new
// streak. Days before the last completion leave the streak alone.
func advanceStreak(habit *entity.Habit, day entity.Date) {
	last := habit.LastCompletedOn
	if last.IsZero() {
		habit.Streak = 1
		habit.LastCompletedOn = day
		return
	}
	if !day.After(last) {
		return
	}
	period := habit.PeriodDays()
	switch gap := day.DaysSince(last); {
	case gap < period:
	case gap < 2*period:
		habit.Streak++
		habit.LastCompletedOn = day
	default:
		habit.Streak = 1
		habit.LastCompletedOn = day
	}
}

func (hs *HabitsService) GetHabitHistory(ctx context.Context, habitID, uid uuid.UUID, days int) ([]entity.HabitLog, error) {
	if days == 0 {
		days = DefaultHistoryDays
	}
	if days < 1 || days > maxHistoryDays {
		return nil, validationError("days must be between 1 and 365")
	}
	if _, err := hs.ownedHabit(ctx, habitID, uid); err != nil {
		return nil, err
	}
	today := hs.opts.today()
	logs, err := hs.logsRepo.GetByHabitAndDateRange(ctx, habitID, today.AddDays(1-days), today)
	if err != nil {
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	return logs, nil
}

func (hs *HabitsService) GetHabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error) {
	habit, err := hs.ownedHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	total, err := hs.logsRepo.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	last, err := hs.logsRepo.GetLastLogDate(ctx, habitID)
	if err != nil {
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	return &entity.HabitStats{
		ID:          habit.ID,
		TotalLogs:   total,
		Streak:      habit.Streak,
		LastLogDate: last,
	}, nil
}
