// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Backing service detection

package scanner

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/sony-level/stackprobe/internal/catalog"
)

// ServiceScanner finds references to databases, brokers and caches in
// source files and root-level config files
type ServiceScanner struct {
	reader   *ContentReader
	excludes []string
	logger   *slog.Logger
}

// NewServiceScanner creates a service scanner reading through reader
func NewServiceScanner(reader *ContentReader, opts Options) *ServiceScanner {
	return &ServiceScanner{
		reader:   reader,
		excludes: opts.excludes(catalog.ServiceExcludes),
		logger:   opts.logger(),
	}
}

// serviceSet tracks detected services in discovery order
type serviceSet struct {
	seen  map[catalog.Service]bool
	order []catalog.Service
}

// Scan returns at most one finding per service, in discovery order.
// Only context cancellation is reported as an error.
func (s *ServiceScanner) Scan(ctx context.Context, root string) ([]ServiceFinding, error) {
	set := &serviceSet{seen: make(map[catalog.Service]bool)}

	// Pass 1: source tree
	walkOpts := WalkOptions{Extensions: catalog.ServiceExtensions, Excludes: s.excludes}
	err := Walk(ctx, root, walkOpts, func(path, relPath string) error {
		s.scanFile(path, relPath, set)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pass 2: root config files
	for _, name := range catalog.ConfigFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.scanFile(filepath.Join(root, name), name, set)
	}

	findings := make([]ServiceFinding, 0, len(set.order))
	for _, svc := range set.order {
		d, _ := catalog.DefaultsFor(svc)
		findings = append(findings, ServiceFinding{
			Name:  string(svc),
			Image: d.Image,
			Port:  d.Port,
		})
	}
	return findings, nil
}

// scanFile tests every not-yet-detected service against one file
func (s *ServiceScanner) scanFile(path, relPath string, set *serviceSet) {
	if len(set.order) == len(catalog.ServicePatterns) {
		return
	}

	content, ok := s.reader.Read(path)
	if !ok {
		return
	}

	for _, sig := range catalog.ServicePatterns {
		if set.seen[sig.Service] {
			continue
		}
		for _, re := range sig.Patterns {
			if re.MatchString(content) {
				set.seen[sig.Service] = true
				set.order = append(set.order, sig.Service)
				s.logger.Debug("service detected",
					slog.String("service", string(sig.Service)),
					slog.String("file", relPath),
					slog.String("signature", re.String()))
				break
			}
		}
	}
}
