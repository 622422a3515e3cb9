// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mhelling/podfit/internal/contract"
)

// NewMCPServer initializes and configures the Podfit MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Podfit Assignment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: generate_pods ---
	s.AddTool(mcp.NewTool("generate_pods",
		mcp.WithDescription("Seat a roster of players into pods of 3-5 that share a power level."),
		mcp.WithString("roster_path", mcp.Description("Path to the roster file (YAML or JSON)."), mcp.Required()),
		mcp.WithString("leniency", mcp.Description("Tolerance mode (none, regular, super). Defaults to 'none'."), mcp.Enum("none", "regular", "super")),
		mcp.WithNumber("seed", mcp.Description("Seed for shuffling candidate power levels. Omit for stable ordering.")),
	), h.handleGeneratePods)

	// --- 2. Tool: plan_pod_sizes ---
	s.AddTool(mcp.NewTool("plan_pod_sizes",
		mcp.WithDescription("Compute the pod size breakdown for a given player count."),
		mcp.WithNumber("total", mcp.Description("Total number of players to seat."), mcp.Required()),
	), h.handlePlanPodSizes)

	return s
}

// StartMCPServer starts the Podfit MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
