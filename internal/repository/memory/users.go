package memory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type UsersRepository struct {
	db *db
}

func (ur *UsersRepository) Create(_ context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()
	for _, u := range ur.db.users.rows {
		if u.Email == user.Email {
			return errorvalues.ErrEmailExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = ur.db.now()
	ur.db.users.insert(user.ID, user.Clone())
	return nil
}

func (ur *UsersRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	ur.db.mu.RLock()
	defer ur.db.mu.RUnlock()
	for _, u := range ur.db.users.rows {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (ur *UsersRepository) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	ur.db.mu.RLock()
	defer ur.db.mu.RUnlock()
	u, ok := ur.db.users.get(uid)
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (ur *UsersRepository) Update(_ context.Context, user *entity.User) error {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()
	u, ok := ur.db.users.get(user.ID)
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	u.Name = user.Name
	u.PasswordHash = user.PasswordHash
	return nil
}

// Delete removes the user together with everything the user owns.
func (ur *UsersRepository) Delete(_ context.Context, uid uuid.UUID) error {
	d := ur.db
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.users.remove(uid) {
		return errorvalues.ErrUserNotFound
	}
	d.tasks.removeWhere(func(t *entity.Task) bool { return t.UserID == uid })
	d.habits.removeWhere(func(h *entity.Habit) bool {
		if h.UserID != uid {
			return false
		}
		delete(d.logs, h.ID)
		return true
	})
	d.results.removeWhere(func(r *entity.QuizResult) bool { return r.UserID == uid })
	d.quizzes.removeWhere(func(q *entity.Quiz) bool { return q.UserID == uid })
	d.notes.removeWhere(func(n *entity.Note) bool { return n.UserID == uid })
	d.plans.removeWhere(func(p *entity.StudyPlan) bool { return p.UserID == uid })
	d.sessions.removeWhere(func(s *entity.StudySession) bool { return s.UserID == uid })
	d.goals.removeWhere(func(g *entity.Goal) bool { return g.UserID == uid })
	delete(d.progress, uid)
	delete(d.badges, uid)
	for key := range d.rewards {
		if key.uid == uid {
			delete(d.rewards, key)
		}
	}
	return nil
}
