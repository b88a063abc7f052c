package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var quizColumns = []string{"id", "user_id", "title", "subject", "topic", "difficulty", "time_limit_minutes", "questions", "created_at"}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := sonic.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func sampleQuiz() entity.Quiz {
	return entity.Quiz{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   "Biology Quiz",
		Subject: "Biology",
		Topic:   "Cells",
		Questions: []entity.QuizQuestion{
			{
				ID:            "q1",
				Question:      "Powerhouse of the cell?",
				Options:       map[string]string{"a": "Nucleus", "b": "Mitochondria", "c": "Ribosome", "d": "Golgi"},
				CorrectAnswer: "b",
				Difficulty:    entity.DifficultyEasy,
				Topic:         "Cells",
			},
		},
		Difficulty:       entity.DifficultyMedium,
		TimeLimitMinutes: 10,
		CreatedAt:        time.Now(),
	}
}

func TestCreateQuiz(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewQuizzesRepoWithConn(mock)
	quiz := sampleQuiz()
	query := regexp.QuoteMeta(`INSERT INTO quizzes (user_id, title, subject, topic, difficulty, time_limit_minutes, questions)`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(quiz.UserID, quiz.Title, quiz.Subject, quiz.Topic, quiz.Difficulty, quiz.TimeLimitMinutes, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, now))
		q := quiz
		assert.NoError(t, repo.Create(ctx, &q))
		assert.Equal(t, id, q.ID)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(quiz.UserID, quiz.Title, quiz.Subject, quiz.Topic, quiz.Difficulty, quiz.TimeLimitMinutes, pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		q := quiz
		assert.ErrorIs(t, repo.Create(ctx, &q), errorvalues.ErrOwnerNotFound)
	})
}

func TestGetQuiz(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewQuizzesRepoWithConn(mock)
	quiz := sampleQuiz()
	ctx := context.Background()
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(quizColumns).AddRow(quiz.ID, quiz.UserID, quiz.Title, quiz.Subject, quiz.Topic, quiz.Difficulty,
			quiz.TimeLimitMinutes, mustJSON(t, quiz.Questions), quiz.CreatedAt)
	}
	t.Run("by id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes WHERE id = $1;`)).
			WithArgs(quiz.ID).
			WillReturnRows(row())
		result, err := repo.GetByID(ctx, quiz.ID)
		assert.NoError(t, err)
		assert.Equal(t, quiz, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes WHERE id = $1;`)).
			WithArgs(quiz.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, quiz.ID)
		assert.ErrorIs(t, err, errorvalues.ErrQuizNotFound)
	})
	t.Run("by user and subject", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes WHERE user_id = $1 AND ($2 = '' OR LOWER(subject) = LOWER($2))`)).
			WithArgs(userID, "biology").
			WillReturnRows(row())
		result, err := repo.GetByUserID(ctx, userID, "biology")
		assert.NoError(t, err)
		if assert.Len(t, result, 1) {
			assert.Equal(t, quiz.Questions, result[0].Questions)
		}
	})
	t.Run("delete not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM quizzes WHERE id = $1;`)).
			WithArgs(quiz.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, quiz.ID), errorvalues.ErrQuizNotFound)
	})
}

func TestQuizResults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewQuizResultsRepoWithConn(mock)
	result := entity.QuizResult{
		QuizID:           uuid.New(),
		UserID:           userID,
		Subject:          "Biology",
		Score:            1,
		TotalQuestions:   2,
		Percentage:       50,
		TimeTakenSeconds: 60,
		Answers:          map[string]string{"q1": "b", "q2": "a"},
		CorrectAnswers:   map[string]string{"q1": "b", "q2": "c"},
		Topics:           map[string]string{"q1": "Cells", "q2": "Genetics"},
		CompletedAt:      time.Now(),
	}
	columns := []string{"id", "quiz_id", "user_id", "subject", "score", "total_questions", "percentage", "time_taken_seconds",
		"answers", "correct_answers", "topics", "completed_at"}
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO quiz_results`)).
			WithArgs(result.QuizID, result.UserID, result.Subject, result.Score, result.TotalQuestions, result.Percentage,
				result.TimeTakenSeconds, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), result.CompletedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		r := result
		assert.NoError(t, repo.Create(ctx, &r))
		assert.Equal(t, id, r.ID)
		result.ID = id
	})
	t.Run("by quiz and user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quiz_results WHERE quiz_id = $1 AND user_id = $2`)).
			WithArgs(result.QuizID, userID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(result.ID, result.QuizID, result.UserID, result.Subject, result.Score,
				result.TotalQuestions, result.Percentage, result.TimeTakenSeconds, mustJSON(t, result.Answers),
				mustJSON(t, result.CorrectAnswers), mustJSON(t, result.Topics), result.CompletedAt))
		results, err := repo.GetByQuizAndUser(ctx, result.QuizID, userID)
		assert.NoError(t, err)
		if assert.Len(t, results, 1) {
			assert.Equal(t, result, *results[0])
		}
	})
	t.Run("period db error", func(t *testing.T) {
		from := time.Now().Add(-24 * time.Hour)
		to := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quiz_results WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3`)).
			WithArgs(userID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndPeriod(ctx, userID, from, to)
		assert.Error(t, err)
	})
}
