// Package observability provides OpenTelemetry tracing and metrics for the
// commerce client.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("storefront"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "commerce.getCart")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("storefront"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("storefront"))
//	metrics.RecordOperation(ctx, "bigcommerce", "getCart", "ok", duration)
package observability
