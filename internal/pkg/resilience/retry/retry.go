// Package retry runs operations that may fail transiently, such as ledger
// fetches and action publishing, under an exponential backoff policy.
//
// It wraps avast/retry-go behind a small interface so callers can swap the
// policy in tests:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithRetryIf(func(err error) bool { return !errors.Is(err, ErrPermanent) }),
//	)
//	err := r.Execute(ctx, func() error {
//	    return fetch(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, or the
// context is done.
type Retry interface {
	// Execute calls operation at least once. The operation must be safe to
	// repeat. Cancelling ctx stops further attempts and returns the context
	// error.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
	onRetry     func(attempt uint, err error)
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with exponential backoff.
//
// Defaults: 3 attempts, 1s base delay capped at 5s, only the last error
// returned, every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay that backoff grows from.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between two attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the final error or
// every attempt's error combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf limits retries to errors for which fn returns true. Any other
// error is returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers a callback invoked after each failed attempt that will
// be retried. Attempts are numbered from 0.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
