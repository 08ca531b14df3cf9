package dispatch

import (
	"context"
	"time"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/logger"
	"github.com/commercekit/commercekit/observability"
)

// Middleware transforms an Executor by wrapping it. The returned executor
// delegates to the original while adding cross-cutting behavior.
type Middleware func(Executor) Executor

// Chain composes multiple middlewares into one. Middlewares are applied in
// order: the first middleware is outermost (executes first on the way in,
// last on the way out).
//
// Chain(a, b, c)(exec) is equivalent to a(b(c(exec))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Executor) Executor {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// WithLogging returns a Middleware that logs each Execute call with the
// operation name, duration, and success/error status.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Executor) Executor {
		return &loggingExecutor{inner: inner, log: log}
	}
}

type loggingExecutor struct {
	inner Executor
	log   *logger.Logger
}

func (l *loggingExecutor) Name() string { return l.inner.Name() }

func (l *loggingExecutor) Execute(ctx context.Context, req Request) (any, error) {
	start := time.Now()
	out, err := l.inner.Execute(ctx, req)
	duration := time.Since(start)

	fields := map[string]any{
		logger.FieldProvider:  l.inner.Name(),
		logger.FieldOperation: req.Operation.String(),
		logger.FieldDuration:  duration.String(),
	}
	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("operation failed", fields)
	} else {
		l.log.Debug("operation ok", fields)
	}
	return out, err
}

// WithTracing returns a Middleware that wraps each Execute call in an
// OpenTelemetry span named "{serviceName}.{operation}".
func WithTracing(serviceName string) Middleware {
	return func(inner Executor) Executor {
		return &tracingExecutor{inner: inner, serviceName: serviceName}
	}
}

type tracingExecutor struct {
	inner       Executor
	serviceName string
}

func (t *tracingExecutor) Name() string { return t.inner.Name() }

func (t *tracingExecutor) Execute(ctx context.Context, req Request) (any, error) {
	ctx, span := observability.StartSpan(ctx, t.serviceName+"."+req.Operation.String())
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrProvider, t.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrOperation, req.Operation.String())
	observability.SetSpanAttribute(ctx, observability.AttrClass, string(commerce.ClassOf(req.Operation)))

	out, err := t.inner.Execute(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		observability.SetSpanAttribute(ctx, observability.AttrErrorKind, errorKind(err))
	}
	return out, err
}

// WithMetrics returns a Middleware that records operation counts, durations,
// and errors on the given instruments.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Executor) Executor {
		return &metricsExecutor{inner: inner, metrics: metrics}
	}
}

type metricsExecutor struct {
	inner   Executor
	metrics *observability.Metrics
}

func (m *metricsExecutor) Name() string { return m.inner.Name() }

func (m *metricsExecutor) Execute(ctx context.Context, req Request) (any, error) {
	start := time.Now()
	out, err := m.inner.Execute(ctx, req)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, errorKind(err), "dispatch")
	}
	m.metrics.RecordOperation(ctx, m.inner.Name(), req.Operation.String(), status, duration)
	return out, err
}

func errorKind(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return string(e.Kind)
	}
	return "UNKNOWN"
}
