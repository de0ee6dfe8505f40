// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// MCP server tests

package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/stackprobe/internal/analyzer"
	mcp_internal "github.com/sony-level/stackprobe/internal/mcp"
)

func callAnalyze(t *testing.T, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(analyzer.Options{}, "test")

	tool := s.GetTool(mcp_internal.ToolAnalyzeRepository)
	require.NotNil(t, tool, "tool should be registered")

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      mcp_internal.ToolAnalyzeRepository,
			Arguments: args,
		},
	})
	require.NoError(t, err, "tool failures are reported in the result")
	require.NotEmpty(t, res.Content)
	return res
}

func TestAnalyzeRepository_JSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/svc\n\ngo 1.23\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte(`// listens with port: 8443`), 0o644))

	res := callAnalyze(t, map[string]any{"path": root})
	assert.False(t, res.IsError)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &doc))
	assert.Equal(t, "go", doc["runtime"])
	assert.Equal(t, "example.com/svc", doc["module"])
	assert.Equal(t, []any{float64(8443)}, doc["ports"])
}

func TestAnalyzeRepository_YAML(t *testing.T) {
	res := callAnalyze(t, map[string]any{"path": t.TempDir(), "format": "yaml"})
	assert.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "runtime: null")
}

func TestAnalyzeRepository_InvalidPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	res := callAnalyze(t, map[string]any{"path": missing})
	assert.True(t, res.IsError)

	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &doc))
	assert.Equal(t, "Path does not exist: "+missing, doc["error"])
}

func TestAnalyzeRepository_BadFormat(t *testing.T) {
	res := callAnalyze(t, map[string]any{"path": t.TempDir(), "format": "table"})
	assert.True(t, res.IsError)
}

func TestServe_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := mcp_internal.NewMCPServer(analyzer.Options{}, "test")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = mcp_internal.Serve(ctx, s, strings.NewReader(""), &bytes.Buffer{})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
