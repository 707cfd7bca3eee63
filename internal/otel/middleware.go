package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// InstrumentToolCall runs fn inside a span for the named tool and
// records the invocation count and latency on the global instruments.
// With no exporter configured both are no-ops.
func InstrumentToolCall(ctx context.Context, toolName string, fn func(context.Context) error) error {
	tracer := GetGlobalTracer()
	metrics := GetGlobalMetrics()

	spanCtx, span := tracer.StartToolSpan(ctx, toolName)
	start := time.Now()

	err := fn(spanCtx)

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordToolCall(spanCtx, toolName, durationMs, err == nil)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	return err
}
