// Package ledgersync drives the mirror: it periodically pulls new blocks from
// the remote ledger, feeds them to the accounts store in height order, prunes
// old transactions and forwards the actions produced along the way.
//
// The in-memory state is restored from a snapshot on Start and saved again on
// Close.
package ledgersync

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/resilience/retry"
	"github.com/gabapcia/ledgermirror/internal/state"
)

const instrumentationName = "github.com/gabapcia/ledgermirror/internal/ledgersync"

// ErrServiceAlreadyStarted is returned when Start is called on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service runs the sync loop.
type Service interface {
	// Start restores the state, then syncs once per interval until Close is
	// called or ctx is done. It returns once the first restore succeeded.
	Start(ctx context.Context) error

	// Sync asks the running loop for an immediate pass and returns without
	// waiting for it. It returns false when the loop is not running.
	Sync() bool

	// Close stops the loop, forwards pending actions and saves a snapshot.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	trigger   chan struct{}

	state     *state.State
	ledger    Ledger
	registry  Registry
	forwarder Forwarder
	snapshots state.SnapshotStorage

	retry          retry.Retry
	interval       time.Duration
	batchSize      uint64
	startHeight    *uint64
	pruneThreshold int
	pruneBatch     int
	now            func() time.Time

	tracer               trace.Tracer
	blocksIngested       metric.Int64Counter
	transactionsRetained metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.restore(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	trigger := make(chan struct{}, 1)

	go func() {
		defer close(done)
		s.run(ctx, trigger)
	}()

	s.trigger = trigger
	s.closeFunc = func() {
		cancel()
		<-done
		s.shutdown(context.WithoutCancel(ctx))
	}

	s.isStarted = true
	return nil
}

func (s *service) Sync() bool {
	s.mu.Lock()
	trigger := s.trigger
	s.mu.Unlock()

	if trigger == nil {
		return false
	}

	select {
	case trigger <- struct{}{}:
	default:
		// a pass is already requested
	}
	return true
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
	s.trigger = nil
}

// run executes one pass right away, then one per tick or trigger.
func (s *service) run(ctx context.Context, trigger <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.pass(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "ledger sync pass failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-trigger:
		}
	}
}

func (s *service) restore(ctx context.Context) error {
	if err := s.state.Restore(ctx, s.snapshots); err != nil {
		return err
	}

	if _, ok := s.state.Accounts.SyncedUpTo(); !ok && s.startHeight != nil && *s.startHeight > 0 {
		if err := s.state.Accounts.InitSyncedUpTo(*s.startHeight - 1); err != nil {
			return err
		}
	}

	height, ok := s.state.Accounts.SyncedUpTo()
	logger.Info(ctx, "ledger state restored",
		"state.synced_up_to", height,
		"state.has_synced_up_to", ok,
		"state.transactions_count", s.state.Accounts.TransactionsCount(),
	)

	return nil
}

// shutdown hands off queued actions and saves a snapshot. Deposits settled by
// an aborted pass are committed once their actions are out. ctx is never
// canceled at this point.
func (s *service) shutdown(ctx context.Context) {
	if _, err := s.forwarder.Forward(ctx); err != nil {
		logger.Warn(ctx, "actions left unpublished on shutdown", "error", err)
	} else if err := s.registry.CommitSettled(ctx); err != nil {
		logger.Warn(ctx, "failed to commit settled deposits on shutdown", "error", err)
	}

	if err := s.state.Persist(ctx, s.snapshots); err != nil {
		logger.Error(ctx, "failed to persist ledger state", "error", err)
		return
	}

	logger.Info(ctx, "ledger state persisted", "state.transactions_count", s.state.Accounts.TransactionsCount())
}

type config struct {
	retry          retry.Retry
	interval       time.Duration
	batchSize      uint64
	startHeight    *uint64
	pruneThreshold int
	pruneBatch     int
	now            func() time.Time
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option configures the Service built by New.
type Option func(*config)

// New creates the sync Service.
//
// Defaults: one pass per second, batches of 1000 blocks, pruning 1000
// transactions once more than 1,000,000 are retained, and 3 fetch attempts.
func New(
	st *state.State,
	ledger Ledger,
	registry Registry,
	forwarder Forwarder,
	snapshots state.SnapshotStorage,
	opts ...Option,
) *service {
	cfg := config{
		retry:          retry.New(),
		interval:       time.Second,
		batchSize:      1000,
		pruneThreshold: 1_000_000,
		pruneBatch:     1000,
		now:            time.Now,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	blocksIngested := newCounter(meter,
		"ledgermirror.sync.blocks_ingested",
		"Ledger blocks offered to the accounts store.",
	)
	transactionsRetained := newCounter(meter,
		"ledgermirror.sync.transactions_retained",
		"Ledger blocks retained as transactions.",
	)

	return &service{
		state:                st,
		ledger:               ledger,
		registry:             registry,
		forwarder:            forwarder,
		snapshots:            snapshots,
		retry:                cfg.retry,
		interval:             cfg.interval,
		batchSize:            max(cfg.batchSize, 1),
		startHeight:          cfg.startHeight,
		pruneThreshold:       cfg.pruneThreshold,
		pruneBatch:           cfg.pruneBatch,
		now:                  cfg.now,
		tracer:               cfg.tracerProvider.Tracer(instrumentationName),
		blocksIngested:       blocksIngested,
		transactionsRetained: transactionsRetained,
	}
}

// newCounter falls back to a no-op counter when the meter rejects name.
func newCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		logger.Warn(context.Background(), "failed to create sync counter", "metric.name", name, "error", err)
		return noop.Int64Counter{}
	}
	return counter
}

// WithRetry sets the policy used around ledger reads.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithInterval sets the delay between two passes.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithBatchSize sets how many blocks are requested at once.
func WithBatchSize(n uint64) Option {
	return func(c *config) {
		c.batchSize = n
	}
}

// WithStartHeight sets the first height ingested when the restored state has
// no watermark yet. It is ignored otherwise.
func WithStartHeight(height uint64) Option {
	return func(c *config) {
		c.startHeight = &height
	}
}

// WithPruning evicts batch transactions after a pass that ends with more
// than threshold retained.
func WithPruning(threshold, batch int) Option {
	return func(c *config) {
		c.pruneThreshold = threshold
		c.pruneBatch = batch
	}
}

// WithClock replaces time.Now for the sync completion timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithMeterProvider replaces the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
