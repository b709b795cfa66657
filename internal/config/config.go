// Package config loads the process configuration from LEDGERMIRROR_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/ledgermirror/internal/pkg/validator"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LEDGERMIRROR"

// Actions backends.
const (
	ActionsBackendRedis = "redis"
	ActionsBackendKafka = "kafka"
)

type (
	Redis struct {
		Addr     string `envconfig:"ADDR" required:"true" validate:"required,hostname_port"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"min=0"`
	}

	Ledger struct {
		Endpoint string        `envconfig:"ENDPOINT" required:"true" validate:"required,url"`
		Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
	}

	Sync struct {
		Interval    time.Duration `envconfig:"INTERVAL" default:"1s" validate:"gt=0"`
		BatchSize   uint64        `envconfig:"BATCH_SIZE" default:"1000" validate:"min=1"`
		StartHeight *uint64       `envconfig:"START_HEIGHT"`
	}

	Prune struct {
		Threshold int `envconfig:"THRESHOLD" default:"1000000" validate:"min=0"`
		Batch     int `envconfig:"BATCH" default:"1000" validate:"min=1"`
	}

	Actions struct {
		Backend string `envconfig:"BACKEND" default:"redis" validate:"oneof=redis kafka"`
	}

	Kafka struct {
		Brokers []string `envconfig:"BROKERS" validate:"dive,hostname_port"`
		Topic   string   `envconfig:"TOPIC" default:"ledgermirror-actions"`
	}

	// Config is the full process configuration.
	Config struct {
		LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		ServiceName      string `envconfig:"SERVICE_NAME" default:"ledgermirror" validate:"required"`
		TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
		MetricsAddr      string `envconfig:"METRICS_ADDR" default:":9090"`

		Redis   Redis   `envconfig:"REDIS"`
		Ledger  Ledger  `envconfig:"LEDGER"`
		Sync    Sync    `envconfig:"SYNC"`
		Prune   Prune   `envconfig:"PRUNE"`
		Actions Actions `envconfig:"ACTIONS"`
		Kafka   Kafka   `envconfig:"KAFKA"`
	}
)

// Load reads and validates the configuration.
//
// The Kafka brokers are required only when the actions backend is kafka.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if cfg.Actions.Backend == ActionsBackendKafka {
		if err := validator.Var(cfg.Kafka.Brokers, "required,min=1"); err != nil {
			return Config{}, fmt.Errorf("kafka brokers: %w", err)
		}

		if err := validator.Var(cfg.Kafka.Topic, "required"); err != nil {
			return Config{}, fmt.Errorf("kafka topic: %w", err)
		}
	}

	return cfg, nil
}
