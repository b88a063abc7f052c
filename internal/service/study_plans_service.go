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
	MaxPlanDays        = 30
	maxSubjectsPerDay  = 3
	itemMinutes        = 60
	reviewTopic        = "General Review"
	defaultHoursPerDay = 4
)

type StudyPlansService struct {
	repo  repository.StudyPlansRepositoryI
	gen   ContentGenerator
	locks *keylock.Striped
	opts  options
}

func NewStudyPlansService(plansRepo repository.StudyPlansRepositoryI, gen ContentGenerator, opts ...Option) *StudyPlansService {
	if plansRepo == nil || gen == nil {
		log.Fatal("on study plans service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &StudyPlansService{
		repo:  plansRepo,
		gen:   gen,
		locks: o.locks,
		opts:  o,
	}
}

func (ps *StudyPlansService) CreatePlan(ctx context.Context, uid uuid.UUID, req *CreateStudyPlanRequest) (*entity.StudyPlan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	switch {
	case req.StartDate.IsZero():
		return nil, validationError("start_date is required")
	case req.EndDate.IsZero():
		return nil, validationError("end_date is required")
	case req.EndDate.Before(req.StartDate):
		return nil, validationError("end_date can't be before start_date")
	}
	hours := req.HoursPerDay
	if hours == 0 {
		hours = defaultHoursPerDay
	}
	subjects := make([]entity.Subject, 0, len(req.Subjects))
	for _, s := range req.Subjects {
		subject := entity.Subject{
			Name:           strings.TrimSpace(s.Name),
			Topics:         make([]string, 0, len(s.Topics)),
			Priority:       s.Priority,
			HoursAllocated: s.HoursAllocated,
		}
		if subject.Priority == "" {
			subject.Priority = entity.PriorityMedium
		}
		for _, t := range s.Topics {
			subject.Topics = append(subject.Topics, strings.TrimSpace(t))
		}
		subjects = append(subjects, subject)
	}
	plan := &entity.StudyPlan{
		UserID:           uid,
		Title:            strings.TrimSpace(req.Title),
		Subjects:         subjects,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		StudyHoursPerDay: hours,
		DailySchedule:    BuildSchedule(subjects, req.StartDate, req.EndDate),
		IsActive:         true,
	}
	err := ps.repo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("study plans repository error: " + err.Error())
	}
	return plan, nil
}

// BuildSchedule lays out one day per calendar date from start through end,
// stopping after MaxPlanDays. Every day gets an hour for each of the first
// three subjects.
func BuildSchedule(subjects []entity.Subject, start, end entity.Date) []entity.DailySchedule {
	last := start.AddDays(MaxPlanDays - 1)
	if end.Before(last) {
		last = end
	}
	daily := subjects[:min(len(subjects), maxSubjectsPerDay)]
	schedule := make([]entity.DailySchedule, 0, last.DaysSince(start)+1)
	for day := start; !day.After(last); day = day.AddDays(1) {
		items := make([]entity.ScheduleItem, 0, len(daily))
		for _, s := range daily {
			topic := reviewTopic
			if len(s.Topics) > 0 {
				topic = s.Topics[0]
			}
			items = append(items, entity.ScheduleItem{
				Subject:         s.Name,
				Topic:           topic,
				DurationMinutes: itemMinutes,
				Priority:        s.Priority,
			})
		}
		schedule = append(schedule, entity.DailySchedule{
			Date:       day,
			Items:      items,
			TotalHours: totalHours(items),
		})
	}
	return schedule
}

func totalHours(items []entity.ScheduleItem) float64 {
	minutes := 0
	for _, item := range items {
		minutes += item.DurationMinutes
	}
	return roundTo2(float64(minutes) / 60)
}

func (ps *StudyPlansService) GetUserPlans(ctx context.Context, uid uuid.UUID) ([]*entity.StudyPlan, error) {
	plans, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("study plans repository error: " + err.Error())
	}
	return plans, nil
}

func (ps *StudyPlansService) GetPlan(ctx context.Context, planID, uid uuid.UUID) (*entity.StudyPlan, error) {
	plan, err := ps.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("study plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return nil, errorvalues.ErrPlanNotFound
	}
	return plan, nil
}

func (ps *StudyPlansService) DeletePlan(ctx context.Context, planID, uid uuid.UUID) error {
	unlock := ps.locks.Lock(planID.String())
	defer unlock()

	if _, err := ps.GetPlan(ctx, planID, uid); err != nil {
		return err
	}
	err := ps.repo.Delete(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return err
		}
		return errors.New("study plans repository error: " + err.Error())
	}
	return nil
}

func (ps *StudyPlansService) CompleteItem(ctx context.Context, planID, uid uuid.UUID, req *CompleteItemRequest) (*entity.StudyPlan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, validationError("date is required")
	}
	unlock := ps.locks.Lock(planID.String())
	defer unlock()

	plan, err := ps.GetPlan(ctx, planID, uid)
	if err != nil {
		return nil, err
	}
	item := findItem(plan, req.Date, req.Index)
	if item == nil {
		return nil, errorvalues.ErrScheduleItemNotFound
	}
	if item.Completed {
		return plan, nil
	}
	item.Completed = true
	err = ps.repo.UpdateSchedule(ctx, plan)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("study plans repository error: " + err.Error())
	}
	return plan, nil
}

func findItem(plan *entity.StudyPlan, date entity.Date, index int) *entity.ScheduleItem {
	for i := range plan.DailySchedule {
		day := &plan.DailySchedule[i]
		if !day.Date.Equal(date) {
			continue
		}
		if index < 0 || index >= len(day.Items) {
			return nil
		}
		return &day.Items[index]
	}
	return nil
}

func (ps *StudyPlansService) AdaptPlan(ctx context.Context, planID, uid uuid.UUID) ([]string, error) {
	plan, err := ps.GetPlan(ctx, planID, uid)
	if err != nil {
		return nil, err
	}
	genCtx, cancel := ps.opts.generatorContext(ctx)
	defer cancel()
	adaptations, err := ps.gen.PlanAdaptations(genCtx, plan)
	if err != nil {
		return nil, generationError(err)
	}
	return adaptations, nil
}
