package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewGomsvMCPServer creates a new MCP server with the gomsv tools
// registered. The projectPath is the root directory of the project whose
// minimum supported toolchain is being searched.
func NewGomsvMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"gomsv",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
