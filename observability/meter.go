package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/commercekit/commercekit/logger"
)

// MeterConfig configures metric export for the embedding application.
type MeterConfig struct {
	// ServiceName identifies the storefront in exported metrics.
	ServiceName string
	// ServiceVersion defaults to the build version when empty.
	ServiceVersion string
	// Endpoint is the OTLP HTTP collector host:port.
	Endpoint string
	// Insecure disables TLS toward the collector.
	Insecure bool
	// Interval is the export period. Zero uses the SDK default.
	Interval time.Duration
}

// DefaultMeterConfig targets a local collector with a 15s export period.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName: serviceName,
		Endpoint:    "localhost:4318",
		Insecure:    true,
		Interval:    15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP HTTP. The
// caller owns shutdown.
func InitMeter(ctx context.Context, cfg MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments for commerce operations and the
// request cache.
type Metrics struct {
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	cacheReadTotal    metric.Int64Counter
	cacheRefreshTotal metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	operationTotal, err := meter.Int64Counter("commerce.operation.total",
		metric.WithDescription("Total commerce operations by provider, operation, and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commerce.operation.total counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("commerce.operation.duration",
		metric.WithDescription("Duration of commerce operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commerce.operation.duration histogram: %w", err)
	}

	cacheReadTotal, err := meter.Int64Counter("commerce.cache.read.total",
		metric.WithDescription("Cache reads by operation and result (fresh, stale, miss)"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commerce.cache.read.total counter: %w", err)
	}

	cacheRefreshTotal, err := meter.Int64Counter("commerce.cache.refresh.total",
		metric.WithDescription("Background cache refreshes by operation and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commerce.cache.refresh.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("commerce.error.total",
		metric.WithDescription("Total errors by kind and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commerce.error.total counter: %w", err)
	}

	return &Metrics{
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		cacheReadTotal:    cacheReadTotal,
		cacheRefreshTotal: cacheRefreshTotal,
		errorTotal:        errorTotal,
	}, nil
}

// RecordOperation records one commerce operation execution.
func (m *Metrics) RecordOperation(ctx context.Context, provider, operation, status string, duration time.Duration) {
	m.operationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
	))
}

// RecordCacheRead records a cache read outcome for an operation.
func (m *Metrics) RecordCacheRead(ctx context.Context, operation, result string) {
	m.cacheReadTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("result", result),
	))
}

// RecordCacheRefresh records a background revalidation outcome.
func (m *Metrics) RecordCacheRefresh(ctx context.Context, operation, status string) {
	m.cacheRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// RecordError records an error by kind and component.
func (m *Metrics) RecordError(ctx context.Context, kind, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("component", component),
	))
}
