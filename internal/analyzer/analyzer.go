// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository analysis orchestration

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sony-level/stackprobe/internal/logging"
	"github.com/sony-level/stackprobe/internal/report"
	"github.com/sony-level/stackprobe/internal/scanner"
	"github.com/sony-level/stackprobe/internal/stacks"
)

var (
	// ErrPathNotExist is returned when the analyzed path is missing
	ErrPathNotExist = errors.New("Path does not exist")
	// ErrNotDirectory is returned when the analyzed path is not a directory
	ErrNotDirectory = errors.New("Path is not a directory")
)

// Options configures an analysis run. The zero value is usable.
type Options struct {
	ExtraExcludes []string     // Path markers skipped by both scanners
	MaxFileSize   int64        // Skip larger files; 0 = unlimited
	CacheSize     int          // Shared content cache entries; 0 disables caching
	CacheBytes    int64        // Byte budget of the content cache; 0 = scanner.DefaultCacheBytes
	Sequential    bool         // Run the scanners one after the other
	Logger        *slog.Logger // Debug tracing (optional)

	// Remote sources only
	KeepWorkspace bool   // Keep the clone after analysis
	FullClone     bool   // Clone full history
	WorkspaceBase string // Parent of the clone workspace; OS temp dir by default
}

// Analyze classifies the repository at path, scans it for services and
// ports, and probes for existing container files. It fails only when path
// does not exist, is not a directory, or ctx is cancelled.
func Analyze(ctx context.Context, path string, opts Options) (*report.Report, error) {
	root, err := resolveRoot(path)
	if err != nil {
		return nil, err
	}

	logger := logging.Component(opts.Logger, "analyzer")
	logger.Debug("analyzing repository", slog.String("root", root))

	rt, _ := stacks.NewChain().WithLogger(logging.Component(opts.Logger, "stacks")).Detect(root)

	services, ports, err := scan(ctx, root, opts)
	if err != nil {
		return nil, err
	}

	return &report.Report{
		Path:           root,
		Name:           filepath.Base(root),
		Runtime:        rt,
		Services:       services,
		Ports:          ports,
		ExistingDocker: stacks.DetectDockerArtifacts(root),
	}, nil
}

// resolveRoot returns the absolute, cleaned form of path after checking it
// names a directory
func resolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	// The walk does not descend into a symlinked root
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		if missingPath(err) {
			return "", fmt.Errorf("%w: %s", ErrPathNotExist, root)
		}
		return "", fmt.Errorf("failed to resolve path %s: %w", root, err)
	}
	root = resolved

	info, err := os.Stat(root)
	if err != nil {
		if missingPath(err) {
			return "", fmt.Errorf("%w: %s", ErrPathNotExist, root)
		}
		return "", fmt.Errorf("failed to stat path %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}
	return root, nil
}

// missingPath reports whether err means nothing exists at the path,
// including a path that runs through a regular file
func missingPath(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// scan runs the service and port scanners over root, sharing one content
// cache. They run concurrently unless opts.Sequential is set.
func scan(ctx context.Context, root string, opts Options) ([]report.ServiceFinding, []int, error) {
	reader := scanner.NewContentReader(opts.CacheSize, opts.MaxFileSize).WithCacheBytes(opts.CacheBytes)
	scanOpts := scanner.Options{
		ExtraExcludes: opts.ExtraExcludes,
		Logger:        logging.Component(opts.Logger, "scanner"),
	}
	serviceScanner := scanner.NewServiceScanner(reader, scanOpts)
	portScanner := scanner.NewPortScanner(reader, scanOpts)

	var (
		services []report.ServiceFinding
		ports    []int
	)
	scanServices := func(ctx context.Context) (err error) {
		services, err = serviceScanner.Scan(ctx, root)
		return err
	}
	scanPorts := func(ctx context.Context) (err error) {
		ports, err = portScanner.Scan(ctx, root)
		return err
	}

	if opts.Sequential {
		if err := scanServices(ctx); err != nil {
			return nil, nil, err
		}
		if err := scanPorts(ctx); err != nil {
			return nil, nil, err
		}
		return services, ports, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return scanServices(gctx) })
	g.Go(func() error { return scanPorts(gctx) })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return services, ports, nil
}
