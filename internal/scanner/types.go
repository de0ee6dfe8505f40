// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Scanner types and constants

package scanner

import (
	"io"
	"log/slog"
)

// DefaultCacheSize is the default number of file contents kept in memory
const DefaultCacheSize = 512

// DefaultCacheBytes is the default total size of cached file contents
const DefaultCacheBytes int64 = 64 << 20

// ServiceFinding is a detected backing service with its suggested container
type ServiceFinding struct {
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
	Port  int    `json:"port" yaml:"port"`
}

// WalkOptions selects which files a walk visits
type WalkOptions struct {
	Extensions []string // File extensions to visit, including the dot
	Excludes   []string // Path markers; any relative path containing one is skipped
}

// Options configures the service and port scanners
type Options struct {
	ExtraExcludes []string     // Markers added to the built-in exclusion lists
	Logger        *slog.Logger // Debug tracing (optional)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) excludes(builtin []string) []string {
	out := make([]string, 0, len(builtin)+len(o.ExtraExcludes))
	out = append(out, builtin...)
	for _, marker := range o.ExtraExcludes {
		if marker != "" {
			out = append(out, marker)
		}
	}
	return out
}
