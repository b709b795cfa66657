package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/actions"
	"github.com/gabapcia/ledgermirror/internal/config"
	"github.com/gabapcia/ledgermirror/internal/handlers/cli"
	"github.com/gabapcia/ledgermirror/internal/handlers/metrics"
	"github.com/gabapcia/ledgermirror/internal/infra/ledger"
	"github.com/gabapcia/ledgermirror/internal/infra/messaging/kafka"
	"github.com/gabapcia/ledgermirror/internal/infra/storage/redis"
	"github.com/gabapcia/ledgermirror/internal/ledgersync"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/resilience/retry"
	"github.com/gabapcia/ledgermirror/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ledgermirror/internal/pkg/transport/http"
	"github.com/gabapcia/ledgermirror/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/ledgermirror/internal/registry"
	"github.com/gabapcia/ledgermirror/internal/state"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	redisClient, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher actions.Publisher = redisClient
	if cfg.Actions.Backend == config.ActionsBackendKafka {
		kafkaPublisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer kafkaPublisher.Close()

		publisher = kafkaPublisher
	}

	book := registry.NewBook()
	registryService := registry.New(redisClient, book)

	queue := actions.NewQueue()
	forwarder := actions.NewForwarder(queue, publisher, actions.WithRetry(retry.New(
		retry.WithAttempts(3),
		retry.WithDelay(200*time.Millisecond),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "retrying action publish", "retry.attempt", attempt, "error", err)
		}),
	)))

	store := accounts.New(
		accounts.WithAddressBook(book),
		accounts.WithActionSink(ledgersync.NewSettlingSink(queue, book)),
	)

	ledgerClient := ledger.NewClient(jsonrpc.NewClient(cfg.Ledger.Endpoint, transporthttp.WithTimeout(cfg.Ledger.Timeout)))

	syncOpts := []ledgersync.Option{
		ledgersync.WithInterval(cfg.Sync.Interval),
		ledgersync.WithBatchSize(cfg.Sync.BatchSize),
		ledgersync.WithPruning(cfg.Prune.Threshold, cfg.Prune.Batch),
		ledgersync.WithRetry(retry.New(
			retry.WithRetryIf(func(err error) bool { return !errors.Is(err, context.Canceled) }),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "retrying ledger read", "retry.attempt", attempt, "error", err)
			}),
		)),
	}
	if cfg.Sync.StartHeight != nil {
		syncOpts = append(syncOpts, ledgersync.WithStartHeight(*cfg.Sync.StartHeight))
	}

	syncService := ledgersync.New(state.New(store), ledgerClient, registryService, forwarder, redisClient, syncOpts...)

	snapshotStats := cli.StatsLoaderFunc(func(ctx context.Context) (accounts.Stats, error) {
		saved := state.New(accounts.New())
		if err := saved.Restore(ctx, redisClient); err != nil {
			return accounts.Stats{}, err
		}
		return saved.Accounts.Stats(), nil
	})

	return cli.Run(ctx, registryService, syncService, snapshotStats,
		cli.WithMetricsServer(cfg.MetricsAddr, metrics.NewHandler(store)),
	)
}
