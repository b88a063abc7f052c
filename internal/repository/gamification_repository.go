package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type GamificationRepository struct {
	conn PgConnection
}

func NewGamificationRepoWithConn(conn PgConnection) *GamificationRepository {
	return &GamificationRepository{
		conn: conn,
	}
}

func (gr *GamificationRepository) GetProgress(ctx context.Context, uid uuid.UUID) (*entity.Progress, error) {
	progress := entity.Progress{UserID: uid}
	row := gr.conn.QueryRow(ctx, `SELECT xp, coins, updated_at FROM user_progress WHERE user_id = $1;`, uid)
	if err := row.Scan(&progress.XP, &progress.Coins, &progress.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &progress, nil
		}
		return nil, errors.New("getting progress error: " + err.Error())
	}
	return &progress, nil
}

func (gr *GamificationRepository) SaveProgress(ctx context.Context, progress *entity.Progress) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO user_progress (user_id, xp, coins) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET xp = EXCLUDED.xp, coins = EXCLUDED.coins, updated_at = NOW() RETURNING updated_at;`,
		progress.UserID,
		progress.XP,
		progress.Coins,
	)
	if err := row.Scan(&progress.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("saving progress error: " + err.Error())
	}
	return nil
}

func (gr *GamificationRepository) AddRewardEvent(ctx context.Context, uid uuid.UUID, source string, refID uuid.UUID) (bool, error) {
	ct, err := gr.conn.Exec(ctx, `INSERT INTO reward_events (user_id, source, ref_id) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;`, uid, source, refID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, errorvalues.ErrOwnerNotFound
		}
		return false, errors.New("adding reward event error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func (gr *GamificationRepository) GetBadges(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error) {
	rows, err := gr.conn.Query(ctx, `SELECT badge_code, earned_at FROM user_badges WHERE user_id = $1 ORDER BY earned_at, badge_code;`, uid)
	if err != nil {
		return nil, errors.New("getting badges error: " + err.Error())
	}
	defer rows.Close()
	badges := make([]entity.EarnedBadge, 0)
	for rows.Next() {
		var b entity.EarnedBadge
		if err := rows.Scan(&b.Code, &b.EarnedAt); err != nil {
			return nil, errors.New("unmarshalling badge error: " + err.Error())
		}
		badges = append(badges, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return badges, nil
}

func (gr *GamificationRepository) AddBadge(ctx context.Context, uid uuid.UUID, code string) (bool, error) {
	ct, err := gr.conn.Exec(ctx, `INSERT INTO user_badges (user_id, badge_code) VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`, uid, code)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, errorvalues.ErrOwnerNotFound
		}
		return false, errors.New("adding badge error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}
