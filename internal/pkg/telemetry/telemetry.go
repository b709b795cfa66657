// Package telemetry wires OpenTelemetry logs, metrics and traces to OTLP
// exporters over gRPC. Exporter endpoints are read by the exporters from the
// standard OTEL_EXPORTER_OTLP_* environment variables.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// loggerProvider is set by Init and read by the logger package to attach its
// OTEL bridge core. It stays nil while telemetry is disabled.
var loggerProvider otellog.LoggerProvider

// LoggerProvider returns the LoggerProvider registered by Init, or nil when
// telemetry was never initialized.
func LoggerProvider() otellog.LoggerProvider {
	return loggerProvider
}

func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	loggerProvider = lp
	return lp, nil
}

func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// newResource merges the default SDK resource with the service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops every provider created by Init.
type ShutdownFunc func(ctx context.Context) error

// shutdowner is satisfied by every SDK provider.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownAll stops every provider and joins their errors.
func shutdownAll(providers ...shutdowner) ShutdownFunc {
	return func(ctx context.Context) error {
		errs := make([]error, 0, len(providers))
		for _, p := range providers {
			errs = append(errs, p.Shutdown(ctx))
		}
		return errors.Join(errs...)
	}
}

// Init registers global logger, meter and tracer providers exporting over
// OTLP/gRPC for the given service.
//
// Parameters:
//   - ctx: the context used while creating the exporters.
//   - serviceName: the service.name resource attribute.
//
// Returns:
//   - ShutdownFunc: flushes and stops every provider. Call it once on exit.
//   - error: if any exporter could not be created. Providers created before
//     the failure are shut down before returning.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(lp)(ctx))
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(lp, mp)(ctx))
	}

	return shutdownAll(lp, mp, tp), nil
}
