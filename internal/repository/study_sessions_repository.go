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

type StudySessionsRepository struct {
	conn PgConnection
}

func NewStudySessionsRepoWithConn(conn PgConnection) *StudySessionsRepository {
	return &StudySessionsRepository{
		conn: conn,
	}
}

const sessionColumns = `id, user_id, subject, start_time, end_time, duration_seconds, focus_score, notes, status`

func (sr *StudySessionsRepository) Create(ctx context.Context, session *entity.StudySession) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO study_sessions (user_id, subject, start_time, status)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		session.UserID,
		session.Subject,
		session.StartTime,
		session.Status,
	)
	if err := row.Scan(&session.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// partial unique index allows one active session per user
			case pgUniqueViolation:
				return errorvalues.ErrActiveSessionExists
			case pgForeignKeyViolation:
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("creating study session db error: " + err.Error())
	}
	return nil
}

func (sr *StudySessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE id = $1;`, id)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting study session by id error: " + err.Error())
	}
	return session, nil
}

func (sr *StudySessionsRepository) GetActive(ctx context.Context, uid uuid.UUID) (*entity.StudySession, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE user_id = $1 AND status = $2 LIMIT 1;`,
		uid, entity.SessionActive)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting active session error: " + err.Error())
	}
	return session, nil
}

func (sr *StudySessionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE user_id = $1
		ORDER BY start_time DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting study sessions by uid error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *StudySessionsRepository) GetByUserAndPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.StudySession, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE user_id = $1
		AND start_time >= $2 AND start_time < $3 ORDER BY start_time;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting study sessions for period error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *StudySessionsRepository) Update(ctx context.Context, session *entity.StudySession) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE study_sessions SET end_time = $1, duration_seconds = $2, focus_score = $3, notes = $4, status = $5
		WHERE id = $6;`,
		session.EndTime,
		session.DurationSeconds,
		session.FocusScore,
		session.Notes,
		session.Status,
		session.ID,
	)
	if err != nil {
		return errors.New("error updating study session: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func collectSessions(rows pgx.Rows) ([]*entity.StudySession, error) {
	defer rows.Close()
	sessions := make([]*entity.StudySession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("unmarshalling study session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (*entity.StudySession, error) {
	var s entity.StudySession
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Subject,
		&s.StartTime,
		&s.EndTime,
		&s.DurationSeconds,
		&s.FocusScore,
		&s.Notes,
		&s.Status,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
