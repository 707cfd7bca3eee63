package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bc-dunia/hostprobe/internal/events"
	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

func TestHandleGetHostInfo(t *testing.T) {
	var logBuf bytes.Buffer
	m := NewManager(sysinfo.NewCollector(), events.NewEventLoggerWithWriter(&logBuf, slog.LevelInfo))

	result, err := m.handleGetHostInfo(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned tool error: %+v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text.Text), &snapshot); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	for _, key := range []string{"os", "cpu", "memory", "disks", "network", "battery"} {
		if _, ok := snapshot[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	// The call must have been logged.
	var event map[string]any
	if err := json.Unmarshal(logBuf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if event["msg"] != "tool_call" || event["tool"] != "get_host_info" {
		t.Errorf("unexpected log event: %v", event)
	}
}
