// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration tests

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/stackprobe/internal/config"
	"github.com/sony-level/stackprobe/internal/report"
	"github.com/sony-level/stackprobe/internal/scanner"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stackprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.Init(v, writeConfig(t, ""))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, report.FormatJSON, cfg.Output)
	assert.Empty(t, cfg.Excludes)
	assert.Zero(t, cfg.MaxFileSize)
	assert.Equal(t, scanner.DefaultCacheSize, cfg.CacheSize)
	assert.False(t, cfg.Sequential)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestLoad_ConfigFile(t *testing.T) {
	v := viper.New()
	config.Init(v, writeConfig(t, "output: yaml\nexclude: generated, third_party\nmax-file-size: 1048576\nsequential: true\n"))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, report.FormatYAML, cfg.Output)
	assert.Equal(t, []string{"generated", "third_party"}, cfg.Excludes)
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.True(t, cfg.Sequential)
}

func TestLoad_ExcludeList(t *testing.T) {
	v := viper.New()
	config.Init(v, writeConfig(t, "exclude:\n  - generated\n  - dist\ncache-bytes: 4096\n"))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"generated", "dist"}, cfg.Excludes)
	assert.Equal(t, int64(4096), cfg.CacheBytes)
}

func TestLoad_ExcludeFromEnv(t *testing.T) {
	t.Setenv("STACKPROBE_EXCLUDE", "generated, dist")

	v := viper.New()
	config.Init(v, writeConfig(t, ""))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"generated", "dist"}, cfg.Excludes)
	assert.Equal(t, scanner.DefaultCacheBytes, cfg.CacheBytes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STACKPROBE_OUTPUT", "table")
	t.Setenv("STACKPROBE_CACHE_SIZE", "0")

	v := viper.New()
	config.Init(v, writeConfig(t, "output: yaml\n"))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, report.FormatTable, cfg.Output)
	assert.Zero(t, cfg.CacheSize)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	config.Init(v, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input config.RawInput
	}{
		{"unknown output", config.RawInput{Output: "xml"}},
		{"negative file size", config.RawInput{MaxFileSize: -1}},
		{"negative cache size", config.RawInput{CacheSize: -5}},
		{"negative cache bytes", config.RawInput{CacheBytes: -1}},
		{"bad color", config.RawInput{Color: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.Validate()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParseExcludes(t *testing.T) {
	assert.Nil(t, config.ParseExcludes(""))
	assert.Equal(t, []string{"dist", "build"}, config.ParseExcludes(" dist,, build ,"))
	assert.Equal(t, []string{"a", "b", "c"}, config.ParseExcludes("a", " b,c "))
}
