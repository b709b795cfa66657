// Package kafka publishes queued ledger actions to a Kafka topic.
//
// Every action becomes one message keyed by its principal, so the actions of
// a principal keep their order within a partition. The trace context of the
// publishing span travels in the message headers.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/ledgermirror/internal/actions"
)

const instrumentationName = "github.com/gabapcia/ledgermirror/internal/infra/messaging/kafka"

var (
	// ErrNoBrokers is returned by NewPublisher when no broker address is given.
	ErrNoBrokers = errors.New("kafka brokers are required")

	// ErrNoTopic is returned by NewPublisher when the topic is empty.
	ErrNoTopic = errors.New("kafka topic is required")
)

// Writer is the subset of *kafka.Writer used by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	writer     Writer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

var _ actions.Publisher = (*publisher)(nil)

type config struct {
	batchTimeout   time.Duration
	tracerProvider trace.TracerProvider
	propagator     propagation.TextMapPropagator
	writer         Writer
}

// Option configures the publisher built by NewPublisher.
type Option func(*config)

// WithBatchTimeout bounds how long the writer waits to fill a batch.
func WithBatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.batchTimeout = d
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithPropagator replaces the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *config) {
		c.propagator = p
	}
}

// WithWriter replaces the kafka.Writer built from the brokers.
func WithWriter(w Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// NewPublisher returns an actions.Publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string, opts ...Option) (*publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	if strings.TrimSpace(topic) == "" {
		return nil, ErrNoTopic
	}

	cfg := config{
		batchTimeout:   100 * time.Millisecond,
		tracerProvider: otel.GetTracerProvider(),
		propagator:     otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	writer := cfg.writer
	if writer == nil {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.batchTimeout,
			RequiredAcks: kafka.RequireAll,
		}
	}

	return &publisher{
		writer:     writer,
		tracer:     cfg.tracerProvider.Tracer(instrumentationName),
		propagator: cfg.propagator,
	}, nil
}

// Publish writes the batch in a single call. The batch is either accepted
// by the writer as a whole or reported as failed.
func (p *publisher) Publish(ctx context.Context, batch []actions.QueuedAction) (err error) {
	if len(batch) == 0 {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "actions.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.Int("messaging.batch.message_count", len(batch)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	messages := make([]kafka.Message, 0, len(batch))
	for _, action := range batch {
		value, err := json.Marshal(action)
		if err != nil {
			return err
		}

		headers := []kafka.Header{
			{Key: "action-id", Value: []byte(action.ID.String())},
			{Key: "action-kind", Value: []byte(action.Action.Kind.String())},
			{Key: "block-height", Value: []byte(strconv.FormatUint(action.BlockHeight, 10))},
		}
		carrier := headerCarrier{headers: headers}
		p.propagator.Inject(ctx, &carrier)

		messages = append(messages, kafka.Message{
			Key:     []byte(action.Principal),
			Value:   value,
			Headers: carrier.headers,
			Time:    action.EnqueuedAt,
		})
	}

	return p.writer.WriteMessages(ctx, messages...)
}

func (p *publisher) Close() error {
	return p.writer.Close()
}

// headerCarrier adapts kafka headers to propagation.TextMapCarrier.
type headerCarrier struct {
	headers []kafka.Header
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	for _, header := range c.headers {
		if strings.EqualFold(header.Key, key) {
			return string(header.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if strings.EqualFold(c.headers[i].Key, key) {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, header := range c.headers {
		keys = append(keys, header.Key)
	}
	return keys
}
