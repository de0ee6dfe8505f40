/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/sony-level/stackprobe/internal/analyzer"
	"github.com/sony-level/stackprobe/internal/config"
	"github.com/sony-level/stackprobe/internal/report"
)

// analyzerOptions maps the configuration onto an analysis run
func analyzerOptions(c *config.Config) analyzer.Options {
	return analyzer.Options{
		ExtraExcludes: c.Excludes,
		MaxFileSize:   c.MaxFileSize,
		CacheSize:     c.CacheSize,
		CacheBytes:    c.CacheBytes,
		Sequential:    c.Sequential,
		Logger:        logger,
		KeepWorkspace: c.Keep,
		FullClone:     c.FullClone,
	}
}

// runAnalyze writes the report for source to w. An invalid path is not a
// failure: the error document is printed instead of the report. Clone
// failures are printed the same way and also returned.
func runAnalyze(ctx context.Context, w io.Writer, source string, c *config.Config) error {
	rep, err := analyzer.AnalyzeSource(ctx, source, analyzerOptions(c))
	if err != nil {
		logger.Debug("analysis failed", slog.String("source", source), slog.Any("error", err))
		if writeErr := report.Write(w, report.NewErrorReport(err), c.Output); writeErr != nil {
			return writeErr
		}
		if errors.Is(err, analyzer.ErrPathNotExist) || errors.Is(err, analyzer.ErrNotDirectory) {
			return nil
		}
		return err
	}

	logger.Debug("analysis complete",
		slog.String("runtime", rep.RuntimeKind()),
		slog.Int("services", len(rep.Services)),
		slog.Int("ports", len(rep.Ports)))

	return report.Write(w, rep, c.Output)
}
