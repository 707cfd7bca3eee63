// Package events provides structured logging for key server events.
package events

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// EventLogger logs JSON events. The MCP server owns stdout for the
// protocol stream, so events go to stderr.
type EventLogger struct {
	logger *slog.Logger
}

// NewEventLogger creates an EventLogger with JSON output to stderr.
func NewEventLogger(verbose bool) *EventLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return NewEventLoggerWithWriter(os.Stderr, level)
}

// NewEventLoggerWithWriter creates an EventLogger with JSON output to a
// custom writer. Useful for testing or redirecting output.
func NewEventLoggerWithWriter(w io.Writer, level slog.Level) *EventLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &EventLogger{logger: slog.New(handler)}
}

// LogServerStart logs server startup.
// event: "server_start"
// Attributes: server, version, otel_enabled
func (el *EventLogger) LogServerStart(server, version string, otelEnabled bool) {
	el.logger.Info("server_start",
		"server", server,
		"version", version,
		"otel_enabled", otelEnabled,
	)
}

// LogToolCall logs a completed tool invocation.
// event: "tool_call"
// Attributes: tool, duration_ms
func (el *EventLogger) LogToolCall(tool string, duration time.Duration) {
	el.logger.Info("tool_call",
		"tool", tool,
		"duration_ms", duration.Milliseconds(),
	)
}

// LogToolError logs a failed tool invocation.
// event: "tool_error"
// Attributes: tool, error
func (el *EventLogger) LogToolError(tool string, err error) {
	el.logger.Error("tool_error",
		"tool", tool,
		"error", err.Error(),
	)
}

// LogShutdown logs server termination.
// event: "shutdown"
// Attributes: reason
func (el *EventLogger) LogShutdown(reason string) {
	el.logger.Info("shutdown", "reason", reason)
}
