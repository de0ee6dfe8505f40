/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/stackprobe/internal/config"
	"github.com/sony-level/stackprobe/internal/report"
)

func TestRunAnalyze_Report(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[workspace]\nmembers = [\"a\"]\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runAnalyze(context.Background(), &out, root, &config.Config{Output: report.FormatJSON}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, root, doc["path"])
	assert.Equal(t, "rust", doc["runtime"])
	assert.Equal(t, true, doc["is_workspace"])
}

func TestRunAnalyze_NotADirectoryPrintsErrorDocument(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0o644))

	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, file, &config.Config{Output: report.FormatJSON})
	require.NoError(t, err, "invalid input is reported, not failed")

	assert.Equal(t, "{\n  \"error\": \"Path is not a directory: "+file+"\"\n}\n", out.String())
}

func TestRunAnalyze_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runAnalyze(context.Background(), &out, t.TempDir(), &config.Config{Output: report.FormatYAML}))
	assert.Contains(t, out.String(), "existing_docker:\n")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "Version: dev")
}
