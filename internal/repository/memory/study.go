package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type StudyPlansRepository struct {
	db *db
}

func (pr *StudyPlansRepository) Create(_ context.Context, plan *entity.StudyPlan) error {
	pr.db.mu.Lock()
	defer pr.db.mu.Unlock()
	if !pr.db.userExists(plan.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	plan.ID = uuid.New()
	plan.CreatedAt = pr.db.now()
	pr.db.plans.insert(plan.ID, plan.Clone())
	return nil
}

func (pr *StudyPlansRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.StudyPlan, error) {
	pr.db.mu.RLock()
	defer pr.db.mu.RUnlock()
	p, ok := pr.db.plans.get(id)
	if !ok {
		return nil, errorvalues.ErrPlanNotFound
	}
	return p.Clone(), nil
}

func (pr *StudyPlansRepository) GetByUserID(_ context.Context, uid uuid.UUID) ([]*entity.StudyPlan, error) {
	pr.db.mu.RLock()
	defer pr.db.mu.RUnlock()
	plans := make([]*entity.StudyPlan, 0)
	pr.db.plans.each(func(p *entity.StudyPlan) {
		if p.UserID == uid {
			plans = append(plans, p.Clone())
		}
	})
	return plans, nil
}

func (pr *StudyPlansRepository) UpdateSchedule(_ context.Context, plan *entity.StudyPlan) error {
	pr.db.mu.Lock()
	defer pr.db.mu.Unlock()
	stored, ok := pr.db.plans.get(plan.ID)
	if !ok {
		return errorvalues.ErrPlanNotFound
	}
	stored.DailySchedule = plan.Clone().DailySchedule
	stored.IsActive = plan.IsActive
	return nil
}

func (pr *StudyPlansRepository) Delete(_ context.Context, id uuid.UUID) error {
	pr.db.mu.Lock()
	defer pr.db.mu.Unlock()
	if !pr.db.plans.remove(id) {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

type StudySessionsRepository struct {
	db *db
}

func (sr *StudySessionsRepository) Create(_ context.Context, session *entity.StudySession) error {
	sr.db.mu.Lock()
	defer sr.db.mu.Unlock()
	if !sr.db.userExists(session.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	if session.Status == entity.SessionActive && sr.activeLocked(session.UserID) != nil {
		return errorvalues.ErrActiveSessionExists
	}
	session.ID = uuid.New()
	sr.db.sessions.insert(session.ID, session.Clone())
	return nil
}

func (sr *StudySessionsRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.StudySession, error) {
	sr.db.mu.RLock()
	defer sr.db.mu.RUnlock()
	s, ok := sr.db.sessions.get(id)
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (sr *StudySessionsRepository) GetActive(_ context.Context, uid uuid.UUID) (*entity.StudySession, error) {
	sr.db.mu.RLock()
	defer sr.db.mu.RUnlock()
	s := sr.activeLocked(uid)
	if s == nil {
		return nil, errorvalues.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (sr *StudySessionsRepository) activeLocked(uid uuid.UUID) *entity.StudySession {
	var active *entity.StudySession
	sr.db.sessions.each(func(s *entity.StudySession) {
		if active == nil && s.UserID == uid && s.Status == entity.SessionActive {
			active = s
		}
	})
	return active
}

func (sr *StudySessionsRepository) GetByUserID(_ context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error) {
	sr.db.mu.RLock()
	defer sr.db.mu.RUnlock()
	sessions := make([]*entity.StudySession, 0)
	sr.db.sessions.each(func(s *entity.StudySession) {
		if s.UserID == uid {
			sessions = append(sessions, s.Clone())
		}
	})
	slices.SortStableFunc(sessions, func(a, b *entity.StudySession) int {
		return b.StartTime.Compare(a.StartTime)
	})
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (sr *StudySessionsRepository) GetByUserAndPeriod(_ context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.StudySession, error) {
	sr.db.mu.RLock()
	defer sr.db.mu.RUnlock()
	sessions := make([]*entity.StudySession, 0)
	sr.db.sessions.each(func(s *entity.StudySession) {
		if s.UserID == uid && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			sessions = append(sessions, s.Clone())
		}
	})
	slices.SortStableFunc(sessions, func(a, b *entity.StudySession) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return sessions, nil
}

func (sr *StudySessionsRepository) Update(_ context.Context, session *entity.StudySession) error {
	sr.db.mu.Lock()
	defer sr.db.mu.Unlock()
	stored, ok := sr.db.sessions.get(session.ID)
	if !ok {
		return errorvalues.ErrSessionNotFound
	}
	updated := session.Clone()
	stored.EndTime = updated.EndTime
	stored.DurationSeconds = updated.DurationSeconds
	stored.FocusScore = updated.FocusScore
	stored.Notes = updated.Notes
	stored.Status = updated.Status
	return nil
}
