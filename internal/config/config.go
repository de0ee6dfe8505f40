// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading and validation

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/sony-level/stackprobe/internal/report"
	"github.com/sony-level/stackprobe/internal/scanner"
)

// EnvPrefix is the prefix of environment overrides, e.g. STACKPROBE_OUTPUT
const EnvPrefix = "STACKPROBE"

// Color modes
const (
	ColorAuto = "auto"
	ColorYes  = "yes"
	ColorNo   = "no"
)

// ErrInvalidConfig is returned when a configuration value fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the final, validated configuration
type Config struct {
	Output      report.Format
	Excludes    []string // Extra path markers skipped by both scanners
	MaxFileSize int64    // Bytes; 0 = unlimited
	CacheSize   int      // File contents kept in memory; 0 disables the cache
	CacheBytes  int64    // Total bytes of cached file contents
	Sequential  bool     // Run the scanners one after the other
	Keep        bool     // Keep the clone workspace of a remote source
	FullClone   bool     // Clone full history instead of a shallow clone
	Verbose     bool
	Color       string
}

// RawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type RawInput struct {
	Output      string   `mapstructure:"output"`
	Exclude     []string `mapstructure:"exclude"` // YAML list or comma-separated string
	MaxFileSize int64    `mapstructure:"max-file-size"`
	CacheSize   int      `mapstructure:"cache-size"`
	CacheBytes  int64    `mapstructure:"cache-bytes"`
	Sequential  bool     `mapstructure:"sequential"`
	Keep        bool     `mapstructure:"keep"`
	FullClone   bool     `mapstructure:"full-clone"`
	Verbose     bool     `mapstructure:"verbose"`
	Color       string   `mapstructure:"color"`
}

// Init points v at the config file and environment. An empty configFile
// searches for .stackprobe.yaml in the working and home directories.
func Init(v *viper.Viper, configFile string) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".stackprobe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", string(report.FormatJSON))
	v.SetDefault("exclude", []string{})
	v.SetDefault("max-file-size", 0)
	v.SetDefault("cache-size", scanner.DefaultCacheSize)
	v.SetDefault("cache-bytes", scanner.DefaultCacheBytes)
	v.SetDefault("sequential", false)
	v.SetDefault("keep", false)
	v.SetDefault("full-clone", false)
	v.SetDefault("verbose", false)
	v.SetDefault("color", ColorAuto)
}

// Load merges defaults, config file, env and bound flags, then validates.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	input := &RawInput{}
	// Env vars and plain config strings arrive as "a,b"
	hook := viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))
	if err := v.Unmarshal(input, hook); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return input.Validate()
}

// Validate converts raw input into a Config
func (in *RawInput) Validate() (*Config, error) {
	output, err := report.ParseFormat(in.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if in.MaxFileSize < 0 {
		return nil, fmt.Errorf("%w: max-file-size must not be negative, got %d", ErrInvalidConfig, in.MaxFileSize)
	}
	if in.CacheSize < 0 {
		return nil, fmt.Errorf("%w: cache-size must not be negative, got %d", ErrInvalidConfig, in.CacheSize)
	}
	if in.CacheBytes < 0 {
		return nil, fmt.Errorf("%w: cache-bytes must not be negative, got %d", ErrInvalidConfig, in.CacheBytes)
	}

	colorMode := strings.ToLower(strings.TrimSpace(in.Color))
	switch colorMode {
	case "":
		colorMode = ColorAuto
	case ColorAuto, ColorYes, ColorNo:
	default:
		return nil, fmt.Errorf("%w: color must be auto, yes or no, got %q", ErrInvalidConfig, in.Color)
	}

	return &Config{
		Output:      output,
		Excludes:    ParseExcludes(in.Exclude...),
		MaxFileSize: in.MaxFileSize,
		CacheSize:   in.CacheSize,
		CacheBytes:  in.CacheBytes,
		Sequential:  in.Sequential,
		Keep:        in.Keep,
		FullClone:   in.FullClone,
		Verbose:     in.Verbose,
		Color:       colorMode,
	}, nil
}

// ParseExcludes splits comma-separated marker lists, dropping blanks
func ParseExcludes(items ...string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if marker := strings.TrimSpace(part); marker != "" {
				out = append(out, marker)
			}
		}
	}
	return out
}
