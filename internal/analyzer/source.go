// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Remote repository analysis

package analyzer

import (
	"context"
	"log/slog"

	"github.com/sony-level/stackprobe/internal/fetcher"
	"github.com/sony-level/stackprobe/internal/logging"
	"github.com/sony-level/stackprobe/internal/report"
	"github.com/sony-level/stackprobe/internal/workspace"
)

// AnalyzeSource analyzes a local path or a GitHub/GitLab URL. Remote
// repositories are cloned into a workspace that is removed afterwards
// unless opts.KeepWorkspace is set. Their report carries the URL as path
// and the repository name as name.
func AnalyzeSource(ctx context.Context, source string, opts Options) (*report.Report, error) {
	if !fetcher.IsRemote(source) {
		return Analyze(ctx, source, opts)
	}

	logger := logging.Component(opts.Logger, "analyzer")

	ws, err := workspace.New(&workspace.WorkspaceConfig{
		BaseDir: opts.WorkspaceBase,
		Keep:    opts.KeepWorkspace,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			logger.Warn("workspace cleanup failed", slog.String("path", ws.Path), slog.Any("error", err))
		}
	}()

	result, err := fetcher.Fetch(ctx, &fetcher.FetchConfig{
		Source:       source,
		Destination:  ws.RepoPath(),
		ShallowClone: !opts.FullClone,
		Logger:       logging.Component(opts.Logger, "fetcher"),
	})
	if err != nil {
		return nil, err
	}

	rep, err := Analyze(ctx, result.Destination, opts)
	if err != nil {
		return nil, err
	}
	rep.Path = source
	rep.Name = result.Repo.Repo

	if ws.ShouldKeep() {
		logger.Info("workspace kept", slog.String("path", ws.Path))
	}
	return rep, nil
}
