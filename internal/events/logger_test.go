package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]any
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("event line is not valid JSON: %v\n%s", err, line)
		}
		events = append(events, event)
	}
	return events
}

func TestLogToolCall(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLoggerWithWriter(&buf, slog.LevelInfo)

	el.LogToolCall("get_host_info", 420*time.Millisecond)

	events := decodeEvents(t, &buf)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0]["msg"] != "tool_call" {
		t.Errorf("msg = %v, want tool_call", events[0]["msg"])
	}
	if events[0]["tool"] != "get_host_info" {
		t.Errorf("tool = %v", events[0]["tool"])
	}
	if events[0]["duration_ms"] != float64(420) {
		t.Errorf("duration_ms = %v, want 420", events[0]["duration_ms"])
	}
}

func TestLogToolError(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLoggerWithWriter(&buf, slog.LevelInfo)

	el.LogToolError("get_host_info", errors.New("provider unavailable"))

	events := decodeEvents(t, &buf)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0]["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", events[0]["level"])
	}
	if events[0]["error"] != "provider unavailable" {
		t.Errorf("error = %v", events[0]["error"])
	}
}

func TestLogServerStartAndShutdown(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLoggerWithWriter(&buf, slog.LevelInfo)

	el.LogServerStart("host-info", "1.0.0", false)
	el.LogShutdown("stdin closed")

	events := decodeEvents(t, &buf)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0]["msg"] != "server_start" || events[0]["otel_enabled"] != false {
		t.Errorf("unexpected start event: %v", events[0])
	}
	if events[1]["msg"] != "shutdown" || events[1]["reason"] != "stdin closed" {
		t.Errorf("unexpected shutdown event: %v", events[1])
	}
}
