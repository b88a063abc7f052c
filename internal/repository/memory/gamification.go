package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type GoalsRepository struct {
	db *db
}

func (gr *GoalsRepository) Create(_ context.Context, goal *entity.Goal) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	if !gr.db.userExists(goal.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	goal.ID = uuid.New()
	goal.CreatedAt = gr.db.now()
	goal.UpdatedAt = goal.CreatedAt
	gr.db.goals.insert(goal.ID, goal.Clone())
	return nil
}

func (gr *GoalsRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	gr.db.mu.RLock()
	defer gr.db.mu.RUnlock()
	g, ok := gr.db.goals.get(id)
	if !ok {
		return nil, errorvalues.ErrGoalNotFound
	}
	return g.Clone(), nil
}

func (gr *GoalsRepository) GetByUserID(_ context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	gr.db.mu.RLock()
	defer gr.db.mu.RUnlock()
	goals := make([]*entity.Goal, 0)
	gr.db.goals.each(func(g *entity.Goal) {
		if g.UserID == uid {
			goals = append(goals, g.Clone())
		}
	})
	slices.Reverse(goals)
	return goals, nil
}

func (gr *GoalsRepository) Update(_ context.Context, goal *entity.Goal) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	stored, ok := gr.db.goals.get(goal.ID)
	if !ok {
		return errorvalues.ErrGoalNotFound
	}
	stored.Title = goal.Title
	stored.Target = goal.Target
	stored.Current = goal.Current
	stored.Status = goal.Status
	stored.UpdatedAt = gr.db.now()
	goal.UpdatedAt = stored.UpdatedAt
	return nil
}

func (gr *GoalsRepository) Delete(_ context.Context, id uuid.UUID) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	if !gr.db.goals.remove(id) {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

type rewardKey struct {
	uid    uuid.UUID
	source string
	ref    uuid.UUID
}

type GamificationRepository struct {
	db *db
}

func (gr *GamificationRepository) GetProgress(_ context.Context, uid uuid.UUID) (*entity.Progress, error) {
	gr.db.mu.RLock()
	defer gr.db.mu.RUnlock()
	p, ok := gr.db.progress[uid]
	if !ok {
		p = entity.Progress{UserID: uid}
	}
	return &p, nil
}

func (gr *GamificationRepository) SaveProgress(_ context.Context, progress *entity.Progress) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	if !gr.db.userExists(progress.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	progress.UpdatedAt = gr.db.now()
	gr.db.progress[progress.UserID] = *progress
	return nil
}

func (gr *GamificationRepository) AddRewardEvent(_ context.Context, uid uuid.UUID, source string, refID uuid.UUID) (bool, error) {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	if !gr.db.userExists(uid) {
		return false, errorvalues.ErrOwnerNotFound
	}
	key := rewardKey{uid: uid, source: source, ref: refID}
	if _, ok := gr.db.rewards[key]; ok {
		return false, nil
	}
	gr.db.rewards[key] = struct{}{}
	return true, nil
}

func (gr *GamificationRepository) GetBadges(_ context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error) {
	gr.db.mu.RLock()
	defer gr.db.mu.RUnlock()
	return append(make([]entity.EarnedBadge, 0, len(gr.db.badges[uid])), gr.db.badges[uid]...), nil
}

func (gr *GamificationRepository) AddBadge(_ context.Context, uid uuid.UUID, code string) (bool, error) {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()
	if !gr.db.userExists(uid) {
		return false, errorvalues.ErrOwnerNotFound
	}
	earned := gr.db.badges[uid]
	if slices.ContainsFunc(earned, func(b entity.EarnedBadge) bool { return b.Code == code }) {
		return false, nil
	}
	gr.db.badges[uid] = append(earned, entity.EarnedBadge{Code: code, EarnedAt: gr.db.now()})
	return true, nil
}
