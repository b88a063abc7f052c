package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const (
	defaultSessionsLimit = 10
	maxSessionsLimit     = 100
)

type SessionsService struct {
	repo     repository.StudySessionsRepositoryI
	locks    *keylock.Striped
	now      func() time.Time
	rewarder Rewarder
}

func NewSessionsService(sessionsRepo repository.StudySessionsRepositoryI, opts ...Option) *SessionsService {
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	o := buildOptions(opts)
	return &SessionsService{
		repo:     sessionsRepo,
		locks:    o.locks,
		now:      o.now,
		rewarder: o.rewarder,
	}
}

func (ss *SessionsService) StartSession(ctx context.Context, uid uuid.UUID, req *StartSessionRequest) (*entity.StudySession, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unlock := ss.locks.Lock("session:" + uid.String())
	defer unlock()

	_, err := ss.repo.GetActive(ctx, uid)
	switch {
	case err == nil:
		return nil, errorvalues.ErrActiveSessionExists
	case !errors.Is(err, errorvalues.ErrSessionNotFound):
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	session := &entity.StudySession{
		UserID:    uid,
		Subject:   strings.TrimSpace(req.Subject),
		StartTime: ss.now(),
		Status:    entity.SessionActive,
	}
	err = ss.repo.Create(ctx, session)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrActiveSessionExists):
			return nil, err
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *SessionsService) EndSession(ctx context.Context, sessionID, uid uuid.UUID, req *EndSessionRequest) (*entity.StudySession, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	session, err := ss.endSession(ctx, sessionID, uid, req)
	if err != nil {
		return nil, err
	}
	grantReward(ctx, ss.rewarder, uid, SessionReward(session))
	return session, nil
}

func (ss *SessionsService) endSession(ctx context.Context, sessionID, uid uuid.UUID, req *EndSessionRequest) (*entity.StudySession, error) {
	unlock := ss.locks.Lock(sessionID.String())
	defer unlock()

	session, err := ss.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid || session.Status != entity.SessionActive {
		return nil, errorvalues.ErrSessionNotFound
	}
	end := ss.now()
	duration := end.Sub(session.StartTime)
	if duration < 0 {
		duration = 0
	}
	score := FocusScore(duration)
	if req.FocusScore != nil {
		score = *req.FocusScore
	}
	session.EndTime = &end
	session.DurationSeconds = int(duration / time.Second)
	session.FocusScore = &score
	session.Notes = req.Notes
	session.Status = entity.SessionCompleted
	err = ss.repo.Update(ctx, session)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

// FocusScore estimates focus from session length when the user gives none.
func FocusScore(d time.Duration) int {
	switch {
	case d < 5*time.Minute:
		return 50
	case d > 25*time.Minute:
		return 100
	}
	return 80
}

func (ss *SessionsService) GetUserSessions(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error) {
	if limit == 0 {
		limit = defaultSessionsLimit
	}
	if limit < 1 || limit > maxSessionsLimit {
		return nil, validationError("limit must be between 1 and 100")
	}
	sessions, err := ss.repo.GetByUserID(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return sessions, nil
}

func (ss *SessionsService) GetActiveSession(ctx context.Context, uid uuid.UUID) (*entity.StudySession, error) {
	session, err := ss.repo.GetActive(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}
