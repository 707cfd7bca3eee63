// Package handlers registers the MCP tools exposed by the host-info
// server.
package handlers

import (
	"bytes"
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bc-dunia/hostprobe/internal/events"
	"github.com/bc-dunia/hostprobe/internal/otel"
	"github.com/bc-dunia/hostprobe/internal/report"
	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

const toolGetHostInfo = "get_host_info"

// Manager wires the snapshot collector to the MCP server.
type Manager struct {
	collector *sysinfo.Collector
	logger    *events.EventLogger
}

// NewManager creates a handler manager.
func NewManager(collector *sysinfo.Collector, logger *events.EventLogger) *Manager {
	return &Manager{collector: collector, logger: logger}
}

// RegisterTools registers all tools with the MCP server. The server
// exposes exactly one operation.
func (m *Manager) RegisterTools(s *server.MCPServer) {
	tool := mcp.NewTool(toolGetHostInfo,
		mcp.WithDescription("获取主机信息：CPU、内存、磁盘、网络、操作系统等。以 JSON 对象返回。"),
	)
	s.AddTool(tool, m.handleGetHostInfo)
}

// handleGetHostInfo collects a fresh snapshot and returns it as a JSON
// text result. Collection is synchronous; the CPU sampling window is
// the only deliberate wait.
func (m *Manager) handleGetHostInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	var buf bytes.Buffer
	err := otel.InstrumentToolCall(ctx, toolGetHostInfo, func(ctx context.Context) error {
		snap, err := m.collector.Collect(ctx)
		if err != nil {
			return err
		}
		return report.WriteJSON(&buf, snap)
	})
	if err != nil {
		m.logger.LogToolError(toolGetHostInfo, err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	m.logger.LogToolCall(toolGetHostInfo, time.Since(start))
	return mcp.NewToolResultText(buf.String()), nil
}
