package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const defaultGeneratorTimeout = 5 * time.Second

type options struct {
	now              func() time.Time
	generatorTimeout time.Duration
	locks            *keylock.Striped
	autoRegister     bool
	rewarder         Rewarder
}

type Option func(*options)

// WithClock sets the source of "now". Today is derived from it in the
// clock's own location.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithGeneratorTimeout bounds every content generator call.
func WithGeneratorTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.generatorTimeout = d
		}
	}
}

// WithLocks shares one set of per-entity locks between services.
func WithLocks(locks *keylock.Striped) Option {
	return func(o *options) {
		o.locks = locks
	}
}

// WithAutoRegister makes login create an account for unknown emails.
func WithAutoRegister(enabled bool) Option {
	return func(o *options) {
		o.autoRegister = enabled
	}
}

// WithRewarder makes task completion and session end earn rewards.
func WithRewarder(r Rewarder) Option {
	return func(o *options) {
		o.rewarder = r
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:              time.Now,
		generatorTimeout: defaultGeneratorTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locks == nil {
		o.locks = keylock.New(keylock.DefaultStripes)
	}
	return o
}

func (o *options) today() entity.Date {
	return entity.DateOf(o.now())
}

func (o *options) generatorContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, o.generatorTimeout)
}

func generationError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errorvalues.ErrGenerationTimeout
	}
	return errors.New("content generator error: " + err.Error())
}

// grantReward never fails the work being rewarded; errors are only logged.
// Callers must not hold an entity lock, since the rewarder takes its own.
func grantReward(ctx context.Context, r Rewarder, uid uuid.UUID, reward entity.Reward) {
	if r == nil {
		return
	}
	if _, err := r.Award(ctx, uid, reward); err != nil {
		slog.Warn("granting reward failed",
			slog.String("source", reward.Source),
			slog.String("ref", reward.RefID.String()),
			slog.String("error", err.Error()),
		)
	}
}
