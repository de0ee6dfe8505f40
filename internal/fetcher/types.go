// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Fetcher types and constants

package fetcher

import (
	"errors"
	"io"
	"log/slog"
	"regexp"
)

// Source type constants
const (
	SourceTypeUnknown = "unknown"
	SourceTypeGitHub  = "github"
	SourceTypeGitLab  = "gitlab"
	SourceTypeLocal   = "local"
)

var (
	// ErrInvalidGitURL is returned for a URL that is not a GitHub or GitLab repository
	ErrInvalidGitURL = errors.New("invalid git URL")
	// ErrCloneFailed wraps any go-git clone failure
	ErrCloneFailed = errors.New("failed to clone repository")
)

// gitPattern matches one URL form of a hosting platform
type gitPattern struct {
	platform string
	re       *regexp.Regexp
}

// gitPatterns capture owner and repository name
var gitPatterns = []gitPattern{
	// https://github.com/user/repo(.git)
	{SourceTypeGitHub, regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)},
	// git@github.com:user/repo(.git)
	{SourceTypeGitHub, regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)},
	// https://gitlab.com/user/repo(.git)
	{SourceTypeGitLab, regexp.MustCompile(`^https?://gitlab\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)},
	// git@gitlab.com:user/repo(.git)
	{SourceTypeGitLab, regexp.MustCompile(`^git@gitlab\.com:([^/]+)/([^/]+?)(?:\.git)?$`)},
}

// FetchConfig holds configuration for cloning a repository
type FetchConfig struct {
	Source       string       // GitHub or GitLab URL
	Destination  string       // Empty target directory (workspace.RepoPath())
	ShallowClone bool         // Clone only the tip of the default branch
	Progress     io.Writer    // go-git progress output (optional)
	Logger       *slog.Logger // Debug tracing (optional)
}

// FetchResult describes a completed clone
type FetchResult struct {
	Source      string
	Destination string
	SourceType  string
	Repo        *GitRepoInfo
}

// GitRepoInfo contains parsed git repository information
type GitRepoInfo struct {
	Owner    string
	Repo     string
	URL      string
	Platform string // "github" or "gitlab"
}
