// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Source classification and URL parsing

package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Fetch clones a GitHub or GitLab repository into config.Destination.
// Local paths are not fetched: they are analyzed in place.
func Fetch(ctx context.Context, config *FetchConfig) (*FetchResult, error) {
	if config == nil {
		return nil, errors.New("fetch config is nil")
	}
	if config.Source == "" {
		return nil, errors.New("source is empty")
	}
	if config.Destination == "" {
		return nil, errors.New("destination is empty")
	}

	switch sourceType := DetectSourceType(config.Source); sourceType {
	case SourceTypeGitHub, SourceTypeGitLab:
		return fetchFromGit(ctx, config, sourceType)
	case SourceTypeLocal:
		return nil, fmt.Errorf("local source %s is analyzed in place, not fetched", config.Source)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidGitURL, config.Source)
	}
}

// DetectSourceType classifies source as a GitHub URL, a GitLab URL, a
// local path, or unknown (another URL scheme or host)
func DetectSourceType(source string) string {
	if IsGitHubURL(source) {
		return SourceTypeGitHub
	}
	if IsGitLabURL(source) {
		return SourceTypeGitLab
	}
	if isLocalPath(source) {
		return SourceTypeLocal
	}
	return SourceTypeUnknown
}

// IsRemote reports whether source names a repository to clone
func IsRemote(source string) bool {
	t := DetectSourceType(source)
	return t == SourceTypeGitHub || t == SourceTypeGitLab
}

// IsGitHubURL checks if the source is a GitHub repository URL
func IsGitHubURL(source string) bool {
	info, err := ParseGitURL(source)
	return err == nil && info.Platform == SourceTypeGitHub
}

// IsGitLabURL checks if the source is a GitLab repository URL
func IsGitLabURL(source string) bool {
	info, err := ParseGitURL(source)
	return err == nil && info.Platform == SourceTypeGitLab
}

// ParseGitURL extracts owner and repository from a GitHub or GitLab URL
func ParseGitURL(url string) (*GitRepoInfo, error) {
	for _, p := range gitPatterns {
		if m := p.re.FindStringSubmatch(url); m != nil {
			return &GitRepoInfo{
				Owner:    m[1],
				Repo:     strings.TrimSuffix(m[2], ".git"),
				URL:      url,
				Platform: p.platform,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidGitURL, url)
}

// NormalizeGitURL converts SSH and HTTP forms to the HTTPS clone URL.
// Anything else is returned unchanged.
func NormalizeGitURL(url string) string {
	info, err := ParseGitURL(url)
	if err != nil {
		return url
	}
	return fmt.Sprintf("https://%s.com/%s/%s.git", info.Platform, info.Owner, info.Repo)
}

// isLocalPath reports whether source looks like a filesystem path rather
// than a URL. The path does not need to exist.
func isLocalPath(source string) bool {
	return !strings.Contains(source, "://") && !strings.HasPrefix(source, "git@")
}
