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

const defaultGoalUnit = "hours"

type GoalsService struct {
	repo  repository.GoalsRepositoryI
	locks *keylock.Striped
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, opts ...Option) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	o := buildOptions(opts)
	return &GoalsService{
		repo:  goalsRepo,
		locks: o.locks,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal := &entity.Goal{
		UserID: uid,
		Title:  strings.TrimSpace(req.Title),
		Target: req.Target,
		Unit:   strings.TrimSpace(req.Unit),
		Period: req.Period,
		Status: entity.GoalActive,
	}
	if goal.Unit == "" {
		goal.Unit = defaultGoalUnit
	}
	if goal.Period == "" {
		goal.Period = entity.GoalWeekly
	}
	err := gs.repo.Create(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	goals, err := gs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrGoalNotFound
	}
	return goal, nil
}

// UpdateGoal applies the set fields, then marks the goal completed exactly
// while current has reached target.
func (gs *GoalsService) UpdateGoal(ctx context.Context, goalID, uid uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unlock := gs.locks.Lock(goalID.String())
	defer unlock()

	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Target != nil {
		goal.Target = *req.Target
	}
	if req.Current != nil {
		goal.Current = *req.Current
	}
	goal.Status = entity.GoalActive
	if goal.Current >= goal.Target {
		goal.Status = entity.GoalCompleted
	}
	err = gs.repo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error {
	unlock := gs.locks.Lock(goalID.String())
	defer unlock()

	if _, err := gs.GetGoal(ctx, goalID, uid); err != nil {
		return err
	}
	err := gs.repo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}
