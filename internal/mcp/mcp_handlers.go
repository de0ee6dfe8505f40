// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// MCP tool handlers

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sony-level/stackprobe/internal/analyzer"
	"github.com/sony-level/stackprobe/internal/report"
)

type toolHandler struct {
	baseOpts analyzer.Options
}

func (h *toolHandler) handleAnalyzeRepository(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", ".")
	if path == "" {
		path = "."
	}

	format, err := report.ParseFormat(request.GetString("format", ""))
	if err != nil || format == report.FormatTable {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: expected json or yaml", request.GetString("format", ""))), nil
	}

	var doc any
	rep, err := analyzer.AnalyzeSource(ctx, path, h.baseOpts)
	if err != nil {
		doc = report.NewErrorReport(err)
	} else {
		doc = rep
	}

	data, encErr := marshal(doc, format)
	if encErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", encErr)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func marshal(doc any, format report.Format) ([]byte, error) {
	if format == report.FormatYAML {
		return report.MarshalYAML(doc)
	}
	return report.MarshalJSON(doc)
}
