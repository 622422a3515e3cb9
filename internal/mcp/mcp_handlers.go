package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mhelling/podfit/core"
	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/internal/roster"
	"github.com/mhelling/podfit/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGeneratePods(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.RosterPath = request.GetString("roster_path", "")
	if cfg.RosterPath == "" {
		return mcp.NewToolResultError("roster_path is required"), nil
	}
	if m := request.GetString("leniency", ""); m != "" {
		mode := schema.LeniencyMode(m)
		if _, ok := schema.ValidLeniencyModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid leniency %q: must be none, regular or super", m)), nil
		}
		cfg.Leniency = mode
	}
	if s := request.GetInt("seed", 0); s != 0 {
		seed := int64(s)
		cfg.Seed = &seed
	}

	r, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("roster load failed: %v", err)), nil
	}
	units, err := roster.BuildUnits(r)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid roster: %v", err)), nil
	}

	result := core.Generate(units, core.Options{Leniency: cfg.Leniency, Seed: cfg.Seed})

	enriched := schema.EnrichResult(&result, cfg.Leniency)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePlanPodSizes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	total := request.GetInt("total", 0)
	if total < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid total %d: must not be negative", total)), nil
	}

	sizes := core.PlanPodSizes(total)
	plan := struct {
		Total int   `json:"total"`
		Pods  int   `json:"pods"`
		Sizes []int `json:"sizes"`
	}{
		Total: total,
		Pods:  len(sizes),
		Sizes: sizes,
	}

	jsonData, _ := json.MarshalIndent(plan, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
