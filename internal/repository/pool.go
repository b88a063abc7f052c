package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/studyos/pkg/cleanup"
	"github.com/limbo/studyos/pkg/entity"
)

// PostgreSQL error codes the repositories translate
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Connect opens a pool shared by every repository and registers its close
// as a cleanup job.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection pool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging connection pool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func dateArg(d *entity.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}

func dateValueArg(d entity.Date) *time.Time {
	return dateArg(&d)
}

func datePtr(t *time.Time) *entity.Date {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)
	return &d
}

func dateValue(t *time.Time) entity.Date {
	if t == nil {
		return entity.Date{}
	}
	return entity.DateOf(*t)
}

func marshalJSONB(v any) ([]byte, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, errors.New("encoding jsonb error: " + err.Error())
	}
	return data, nil
}

func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return errors.New("decoding jsonb error: " + err.Error())
	}
	return nil
}
