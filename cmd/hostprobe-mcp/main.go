package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bc-dunia/hostprobe/internal/config"
	"github.com/bc-dunia/hostprobe/internal/events"
	"github.com/bc-dunia/hostprobe/internal/handlers"
	"github.com/bc-dunia/hostprobe/internal/otel"
	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

func main() {
	// Optional .env in the working directory seeds the flag defaults.
	_ = godotenv.Load()

	otelExporter := flag.String("otel-exporter", envOr("HOSTPROBE_OTEL_EXPORTER", "none"),
		"Telemetry exporter: none, stdout, otlp-grpc, otlp-http")
	otelEndpoint := flag.String("otel-endpoint", os.Getenv("HOSTPROBE_OTEL_ENDPOINT"),
		"OTLP endpoint (e.g., localhost:4317)")
	otelInsecure := flag.Bool("otel-insecure", false, "Disable TLS for OTLP connections")
	verbose := flag.Bool("verbose", false, "Enable debug logging to stderr")
	flag.Parse()

	logger := events.NewEventLogger(*verbose)
	ctx := context.Background()

	exporterType := otel.ParseExporterType(*otelExporter)
	otelEnabled := exporterType != otel.ExporterNone

	tracer, err := otel.NewTracer(ctx, &otel.Config{
		Enabled:        otelEnabled,
		ServiceName:    config.ServerName,
		ServiceVersion: config.ServerVersion,
		ExporterType:   exporterType,
		OTLPEndpoint:   *otelEndpoint,
		OTLPInsecure:   *otelInsecure,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostprobe-mcp: initializing tracing: %v\n", err)
		os.Exit(1)
	}
	otel.SetGlobalTracer(tracer)

	metrics, err := otel.NewMetrics(ctx, &otel.MetricsConfig{
		Enabled:        otelEnabled,
		ServiceName:    config.ServerName,
		ServiceVersion: config.ServerVersion,
		ExporterType:   exporterType,
		OTLPEndpoint:   *otelEndpoint,
		OTLPInsecure:   *otelInsecure,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostprobe-mcp: initializing metrics: %v\n", err)
		os.Exit(1)
	}
	otel.SetGlobalMetrics(metrics)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracer.Shutdown(shutdownCtx)
		_ = metrics.Shutdown(shutdownCtx)
	}()

	s := server.NewMCPServer(
		config.ServerName,
		config.ServerVersion,
		server.WithToolCapabilities(false),
	)

	hm := handlers.NewManager(sysinfo.NewCollector(), logger)
	hm.RegisterTools(s)

	logger.LogServerStart(config.ServerName, config.ServerVersion, otelEnabled)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "hostprobe-mcp: %v\n", err)
		os.Exit(1)
	}

	logger.LogShutdown("stdin closed")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
