package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type QuizzesRepository struct {
	conn PgConnection
}

func NewQuizzesRepoWithConn(conn PgConnection) *QuizzesRepository {
	return &QuizzesRepository{
		conn: conn,
	}
}

func (qr *QuizzesRepository) Create(ctx context.Context, quiz *entity.Quiz) error {
	questions, err := marshalJSONB(quiz.Questions)
	if err != nil {
		return err
	}
	row := qr.conn.QueryRow(ctx, `INSERT INTO quizzes (user_id, title, subject, topic, difficulty, time_limit_minutes, questions)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		quiz.UserID,
		quiz.Title,
		quiz.Subject,
		quiz.Topic,
		quiz.Difficulty,
		quiz.TimeLimitMinutes,
		questions,
	)
	if err = row.Scan(&quiz.ID, &quiz.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating quiz db error: " + err.Error())
	}
	return nil
}

func (qr *QuizzesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	row := qr.conn.QueryRow(ctx, `SELECT id, user_id, title, subject, topic, difficulty, time_limit_minutes, questions, created_at
		FROM quizzes WHERE id = $1;`, id)
	quiz, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrQuizNotFound
		}
		return nil, errors.New("getting quiz by id error: " + err.Error())
	}
	return quiz, nil
}

func (qr *QuizzesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, subject string) ([]*entity.Quiz, error) {
	rows, err := qr.conn.Query(ctx, `SELECT id, user_id, title, subject, topic, difficulty, time_limit_minutes, questions, created_at
		FROM quizzes WHERE user_id = $1 AND ($2 = '' OR LOWER(subject) = LOWER($2)) ORDER BY created_at;`, uid, subject)
	if err != nil {
		return nil, errors.New("getting quizzes by uid error: " + err.Error())
	}
	defer rows.Close()
	quizzes := make([]*entity.Quiz, 0)
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, errors.New("unmarshalling quiz error: " + err.Error())
		}
		quizzes = append(quizzes, quiz)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return quizzes, nil
}

func (qr *QuizzesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := qr.conn.Exec(ctx, `DELETE FROM quizzes WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting quiz: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrQuizNotFound
	}
	return nil
}

func scanQuiz(row pgx.Row) (*entity.Quiz, error) {
	var quiz entity.Quiz
	var questions []byte
	err := row.Scan(
		&quiz.ID,
		&quiz.UserID,
		&quiz.Title,
		&quiz.Subject,
		&quiz.Topic,
		&quiz.Difficulty,
		&quiz.TimeLimitMinutes,
		&questions,
		&quiz.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = unmarshalJSONB(questions, &quiz.Questions); err != nil {
		return nil, err
	}
	return &quiz, nil
}

type QuizResultsRepository struct {
	conn PgConnection
}

func NewQuizResultsRepoWithConn(conn PgConnection) *QuizResultsRepository {
	return &QuizResultsRepository{
		conn: conn,
	}
}

func (rr *QuizResultsRepository) Create(ctx context.Context, result *entity.QuizResult) error {
	answers, err := marshalJSONB(result.Answers)
	if err != nil {
		return err
	}
	correct, err := marshalJSONB(result.CorrectAnswers)
	if err != nil {
		return err
	}
	topics, err := marshalJSONB(result.Topics)
	if err != nil {
		return err
	}
	row := rr.conn.QueryRow(ctx, `INSERT INTO quiz_results (quiz_id, user_id, subject, score, total_questions, percentage,
		time_taken_seconds, answers, correct_answers, topics, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		result.QuizID,
		result.UserID,
		result.Subject,
		result.Score,
		result.TotalQuestions,
		result.Percentage,
		result.TimeTakenSeconds,
		answers,
		correct,
		topics,
		result.CompletedAt,
	)
	if err = row.Scan(&result.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrQuizNotFound
		}
		return errors.New("creating quiz result db error: " + err.Error())
	}
	return nil
}

func (rr *QuizResultsRepository) GetByQuizAndUser(ctx context.Context, quizID, uid uuid.UUID) ([]*entity.QuizResult, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, quiz_id, user_id, subject, score, total_questions, percentage, time_taken_seconds,
		answers, correct_answers, topics, completed_at
		FROM quiz_results WHERE quiz_id = $1 AND user_id = $2 ORDER BY completed_at;`, quizID, uid)
	if err != nil {
		return nil, errors.New("getting quiz results error: " + err.Error())
	}
	return collectResults(rows)
}

func (rr *QuizResultsRepository) GetByUserAndPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.QuizResult, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, quiz_id, user_id, subject, score, total_questions, percentage, time_taken_seconds,
		answers, correct_answers, topics, completed_at
		FROM quiz_results WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3 ORDER BY completed_at;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting quiz results for period error: " + err.Error())
	}
	return collectResults(rows)
}

func collectResults(rows pgx.Rows) ([]*entity.QuizResult, error) {
	defer rows.Close()
	results := make([]*entity.QuizResult, 0)
	for rows.Next() {
		var r entity.QuizResult
		var answers, correct, topics []byte
		err := rows.Scan(
			&r.ID,
			&r.QuizID,
			&r.UserID,
			&r.Subject,
			&r.Score,
			&r.TotalQuestions,
			&r.Percentage,
			&r.TimeTakenSeconds,
			&answers,
			&correct,
			&topics,
			&r.CompletedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling quiz result error: " + err.Error())
		}
		if err = unmarshalJSONB(answers, &r.Answers); err != nil {
			return nil, err
		}
		if err = unmarshalJSONB(correct, &r.CorrectAnswers); err != nil {
			return nil, err
		}
		if err = unmarshalJSONB(topics, &r.Topics); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return results, nil
}
