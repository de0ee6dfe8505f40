// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// MCP server exposing repository analysis to agents

package mcp

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sony-level/stackprobe/internal/analyzer"
)

// ToolAnalyzeRepository is the name of the analysis tool
const ToolAnalyzeRepository = "analyze_repository"

// NewMCPServer builds the server without starting it. Every call to the
// tool uses baseOpts.
func NewMCPServer(baseOpts analyzer.Options, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"stackprobe",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseOpts: baseOpts}

	s.AddTool(mcp.NewTool(ToolAnalyzeRepository,
		mcp.WithDescription("Detect the runtime, framework, package manager, backing services, listening ports and existing Docker files of a repository."),
		mcp.WithString("path", mcp.Description("Local directory or GitHub/GitLab URL (defaults to the current directory).")),
		mcp.WithString("format", mcp.Description("Report format. Defaults to 'json'."), mcp.Enum("json", "yaml")),
	), h.handleAnalyzeRepository)

	return s
}

// StartMCPServer serves the tools over stdio until the client disconnects
// or ctx is cancelled
func StartMCPServer(ctx context.Context, baseOpts analyzer.Options, version string) error {
	return Serve(ctx, NewMCPServer(baseOpts, version), os.Stdin, os.Stdout)
}

// Serve runs s over the given streams. Tool calls inherit ctx.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}
