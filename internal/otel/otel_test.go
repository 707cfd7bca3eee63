package otel

import (
	"context"
	"errors"
	"testing"
)

func TestParseExporterType(t *testing.T) {
	cases := map[string]ExporterType{
		"none":      ExporterNone,
		"stdout":    ExporterStdout,
		"otlp-grpc": ExporterOTLPGRPC,
		"otlp-http": ExporterOTLPHTTP,
		"":          ExporterNone,
		"bogus":     ExporterNone,
	}
	for in, want := range cases {
		if got := ParseExporterType(in); got != want {
			t.Errorf("ParseExporterType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewTracerDisabled(t *testing.T) {
	tracer, err := NewTracer(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewTracer failed: %v", err)
	}
	if tracer.Enabled() {
		t.Error("default tracer should be disabled")
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown of disabled tracer failed: %v", err)
	}

	ctx, span := tracer.StartToolSpan(context.Background(), "get_host_info")
	if ctx == nil || span == nil {
		t.Fatal("no-op span should still be usable")
	}
	span.End()
}

func TestNewMetricsDisabled(t *testing.T) {
	metrics, err := NewMetrics(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}
	if metrics.Enabled() {
		t.Error("default metrics should be disabled")
	}

	// Recording on a disabled instance must be safe.
	metrics.RecordToolCall(context.Background(), "get_host_info", 12.5, true)
	if err := metrics.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown of disabled metrics failed: %v", err)
	}
}

func TestNewTracerUnknownExporter(t *testing.T) {
	_, err := NewTracer(context.Background(), &Config{
		Enabled:      true,
		ServiceName:  "hostprobe",
		ExporterType: ExporterType("bogus"),
	})
	if err == nil {
		t.Fatal("expected error for unknown exporter type")
	}
}

func TestInstrumentToolCallPassesThrough(t *testing.T) {
	SetGlobalTracer(nil)
	SetGlobalMetrics(nil)

	called := false
	err := InstrumentToolCall(context.Background(), "get_host_info", func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("wrapped function was not invoked")
	}

	wantErr := errors.New("collect failed")
	err = InstrumentToolCall(context.Background(), "get_host_info", func(ctx context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("error not passed through: %v", err)
	}
}
