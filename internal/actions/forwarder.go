package actions

import (
	"context"
	"fmt"

	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/resilience/retry"
)

// Publisher delivers a batch of actions to their consumers.
//
// Publish must either deliver the whole batch or return an error. A failed
// batch is queued again and published on a later call, so consumers may see
// an action more than once and should deduplicate by QueuedAction.ID.
type Publisher interface {
	Publish(ctx context.Context, batch []QueuedAction) error
}

// Forwarder moves actions from a Queue to a Publisher.
type Forwarder struct {
	queue     *Queue
	publisher Publisher
	retry     retry.Retry
}

type forwarderConfig struct {
	retry retry.Retry
}

// ForwarderOption configures a Forwarder.
type ForwarderOption func(*forwarderConfig)

// WithRetry wraps every Publish call in r.
func WithRetry(r retry.Retry) ForwarderOption {
	return func(c *forwarderConfig) {
		c.retry = r
	}
}

// NewForwarder returns a Forwarder draining queue into publisher. Without
// WithRetry, Publish is attempted once per Forward call.
func NewForwarder(queue *Queue, publisher Publisher, opts ...ForwarderOption) *Forwarder {
	cfg := forwarderConfig{
		retry: retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Forwarder{
		queue:     queue,
		publisher: publisher,
		retry:     cfg.retry,
	}
}

// Forward publishes everything currently queued and returns how many actions
// were delivered. On failure the batch goes back to the front of the queue
// and the returned count is zero.
func (f *Forwarder) Forward(ctx context.Context) (int, error) {
	batch := f.queue.Drain()
	if len(batch) == 0 {
		return 0, nil
	}

	err := f.retry.Execute(ctx, func() error {
		return f.publisher.Publish(ctx, batch)
	})
	if err != nil {
		f.queue.Requeue(batch)
		logger.Warn(ctx, "failed to publish actions",
			"actions.count", len(batch),
			"error", err,
		)

		return 0, fmt.Errorf("publish %d actions: %w", len(batch), err)
	}

	logger.Debug(ctx, "actions published", "actions.count", len(batch))
	return len(batch), nil
}
