package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gomsv/gomsv/internal/adapters/outbound/catalog"
	"github.com/gomsv/gomsv/internal/adapters/outbound/toolchain"
	"github.com/gomsv/gomsv/internal/adapters/outbound/tui"
	"github.com/gomsv/gomsv/internal/application"
	"github.com/gomsv/gomsv/internal/domain"
)

// registerTools registers all gomsv MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. gomsv_find
	s.AddTool(
		mcplib.NewTool("gomsv_find",
			mcplib.WithDescription("Find the oldest toolchain release for which the check command succeeds. Runs a full scan; may take a long time."),
			mcplib.WithString("check", mcplib.Description("Check command to run (default: go build ./...)")),
			mcplib.WithString("min", mcplib.Description("Lowest version to consider, inclusive")),
			mcplib.WithString("max", mcplib.Description("Highest version to consider, inclusive")),
			mcplib.WithBoolean("all_patches", mcplib.Description("Probe every patch release instead of one per minor")),
		),
		handleFind(projectPath),
	)

	// 2. gomsv_list_releases
	s.AddTool(
		mcplib.NewTool("gomsv_list_releases",
			mcplib.WithDescription("List the candidate releases a scan would probe, newest first, as JSON"),
			mcplib.WithString("min", mcplib.Description("Lowest version to consider, inclusive")),
			mcplib.WithString("max", mcplib.Description("Highest version to consider, inclusive")),
			mcplib.WithBoolean("all_patches", mcplib.Description("Include every patch release instead of one per minor")),
		),
		handleListReleases(projectPath),
	)
}

// newFindService wires the real adapters with a silent reporter: MCP
// clients only see the final JSON result.
func newFindService(projectPath string) *application.FindService {
	return application.NewFindService(
		catalog.New(),
		toolchain.New(projectPath),
		tui.Silent{},
	)
}

func configFromRequest(request mcplib.CallToolRequest) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if check := request.GetString("check", ""); check != "" {
		cfg.CheckCommand = strings.Fields(check)
	}
	if min := request.GetString("min", ""); min != "" {
		v := domain.Version(min)
		cfg.MinimumVersion = &v
	}
	if max := request.GetString("max", ""); max != "" {
		v := domain.Version(max)
		cfg.MaximumVersion = &v
	}
	cfg.IncludeAllPatchReleases = request.GetBool("all_patches", false)

	return cfg, cfg.Validate()
}

func handleFind(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		verdict, err := newFindService(projectPath).Find(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("find failed: %v", err)), nil
		}

		return jsonResult(struct {
			MinimumVersion string `json:"minimum_version"`
			Toolchain      string `json:"toolchain"`
		}{verdict.Version.String(), verdict.Toolchain})
	}
}

func handleListReleases(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		releases, err := newFindService(projectPath).Candidates(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("listing releases failed: %v", err)), nil
		}
		return jsonResult(releases)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
