// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Git cloning implementation

package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// fetchFromGit clones a GitHub or GitLab repository
func fetchFromGit(ctx context.Context, config *FetchConfig, sourceType string) (*FetchResult, error) {
	repoInfo, err := ParseGitURL(config.Source)
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cloneURL := NormalizeGitURL(config.Source)
	logger.Debug("cloning repository",
		slog.String("platform", repoInfo.Platform),
		slog.String("repo", repoInfo.Owner+"/"+repoInfo.Repo),
		slog.String("url", cloneURL),
		slog.String("destination", config.Destination),
		slog.Bool("shallow", config.ShallowClone))

	cloneOpts := &git.CloneOptions{
		URL:      cloneURL,
		Progress: config.Progress,
	}
	if config.ShallowClone {
		cloneOpts.Depth = 1
		cloneOpts.SingleBranch = true
		cloneOpts.ReferenceName = plumbing.HEAD
	}

	if _, err := git.PlainCloneContext(ctx, config.Destination, false, cloneOpts); err != nil {
		// Leave no partial clone behind
		_ = os.RemoveAll(config.Destination)
		return nil, fmt.Errorf("%w %s: %w", ErrCloneFailed, cloneURL, err)
	}

	logger.Debug("clone complete", slog.String("destination", config.Destination))

	return &FetchResult{
		Source:      config.Source,
		Destination: config.Destination,
		SourceType:  sourceType,
		Repo:        repoInfo,
	}, nil
}
