package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

func TestNewMetrics_CreatesInstruments(t *testing.T) {
	metrics, err := NewMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	// Recording against the global (noop by default) provider must not panic.
	ctx := context.Background()
	metrics.RecordOperation(ctx, "bigcommerce", "getCart", "ok", 50*time.Millisecond)
	metrics.RecordCacheRead(ctx, "getCart", "fresh")
	metrics.RecordCacheRefresh(ctx, "getCart", "error")
	metrics.RecordError(ctx, "NETWORK", "httpclient")
}

func TestStartSpan_NoProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "commerce.getCart")
	defer span.End()

	if span == nil {
		t.Fatal("StartSpan returned a nil span")
	}

	// Attribute and error helpers must tolerate a non-recording span.
	SetSpanAttribute(ctx, AttrOperation, "getCart")
	SetSpanAttribute(ctx, AttrDurationMs, int64(12))
	SetSpanError(ctx, errors.New("boom"))
}

func TestNewResource_VersionFallback(t *testing.T) {
	res, err := newResource("storefront", "")
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	v, ok := res.Set().Value(semconv.ServiceVersionKey)
	if !ok || v.AsString() == "" {
		t.Errorf("service.version = %q, want the build version when none is given", v.AsString())
	}
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("storefront")
	if cfg.ServiceName != "storefront" {
		t.Errorf("ServiceName = %q, want storefront", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", cfg.SampleRate)
	}
	if cfg.Endpoint == "" {
		t.Error("Endpoint is empty, want a default")
	}
}
