package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type QuizzesRepository struct {
	db *db
}

func (qr *QuizzesRepository) Create(_ context.Context, quiz *entity.Quiz) error {
	qr.db.mu.Lock()
	defer qr.db.mu.Unlock()
	if !qr.db.userExists(quiz.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	quiz.ID = uuid.New()
	quiz.CreatedAt = qr.db.now()
	qr.db.quizzes.insert(quiz.ID, quiz.Clone())
	return nil
}

func (qr *QuizzesRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Quiz, error) {
	qr.db.mu.RLock()
	defer qr.db.mu.RUnlock()
	q, ok := qr.db.quizzes.get(id)
	if !ok {
		return nil, errorvalues.ErrQuizNotFound
	}
	return q.Clone(), nil
}

func (qr *QuizzesRepository) GetByUserID(_ context.Context, uid uuid.UUID, subject string) ([]*entity.Quiz, error) {
	qr.db.mu.RLock()
	defer qr.db.mu.RUnlock()
	quizzes := make([]*entity.Quiz, 0)
	qr.db.quizzes.each(func(q *entity.Quiz) {
		if q.UserID != uid {
			return
		}
		if subject != "" && !strings.EqualFold(q.Subject, subject) {
			return
		}
		quizzes = append(quizzes, q.Clone())
	})
	return quizzes, nil
}

// Delete removes the quiz and every result recorded for it.
func (qr *QuizzesRepository) Delete(_ context.Context, id uuid.UUID) error {
	qr.db.mu.Lock()
	defer qr.db.mu.Unlock()
	if !qr.db.quizzes.remove(id) {
		return errorvalues.ErrQuizNotFound
	}
	qr.db.results.removeWhere(func(r *entity.QuizResult) bool { return r.QuizID == id })
	return nil
}

type QuizResultsRepository struct {
	db *db
}

func (rr *QuizResultsRepository) Create(_ context.Context, result *entity.QuizResult) error {
	rr.db.mu.Lock()
	defer rr.db.mu.Unlock()
	if _, ok := rr.db.quizzes.get(result.QuizID); !ok {
		return errorvalues.ErrQuizNotFound
	}
	result.ID = uuid.New()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = rr.db.now()
	}
	rr.db.results.insert(result.ID, result.Clone())
	return nil
}

func (rr *QuizResultsRepository) GetByQuizAndUser(_ context.Context, quizID, uid uuid.UUID) ([]*entity.QuizResult, error) {
	rr.db.mu.RLock()
	defer rr.db.mu.RUnlock()
	results := make([]*entity.QuizResult, 0)
	rr.db.results.each(func(r *entity.QuizResult) {
		if r.QuizID == quizID && r.UserID == uid {
			results = append(results, r.Clone())
		}
	})
	return results, nil
}

func (rr *QuizResultsRepository) GetByUserAndPeriod(_ context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.QuizResult, error) {
	rr.db.mu.RLock()
	defer rr.db.mu.RUnlock()
	results := make([]*entity.QuizResult, 0)
	rr.db.results.each(func(r *entity.QuizResult) {
		if r.UserID == uid && !r.CompletedAt.Before(from) && r.CompletedAt.Before(to) {
			results = append(results, r.Clone())
		}
	})
	return results, nil
}
