// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Listening port detection

package scanner

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"github.com/sony-level/stackprobe/internal/catalog"
)

// PortScanner collects port numbers from listen/bind idioms in source and
// config files
type PortScanner struct {
	reader   *ContentReader
	excludes []string
	logger   *slog.Logger
}

// NewPortScanner creates a port scanner reading through reader
func NewPortScanner(reader *ContentReader, opts Options) *PortScanner {
	return &PortScanner{
		reader:   reader,
		excludes: opts.excludes(catalog.PortExcludes),
		logger:   opts.logger(),
	}
}

// Scan returns the distinct valid ports in ascending order.
// Only context cancellation is reported as an error.
func (s *PortScanner) Scan(ctx context.Context, root string) ([]int, error) {
	ports := make(map[int]bool)

	walkOpts := WalkOptions{Extensions: catalog.PortExtensions, Excludes: s.excludes}
	err := Walk(ctx, root, walkOpts, func(path, relPath string) error {
		content, ok := s.reader.Read(path)
		if !ok {
			return nil
		}
		for _, port := range ExtractPorts(content) {
			if !ports[port] {
				s.logger.Debug("port detected", slog.Int("port", port), slog.String("file", relPath))
			}
			ports[port] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(ports))
	for port := range ports {
		result = append(result, port)
	}
	sort.Ints(result)
	return result, nil
}

// ExtractPorts returns every valid port captured in content, in match order
// and possibly repeated. Captures that do not parse or fall outside
// [catalog.MinPort, catalog.MaxPort] are dropped.
func ExtractPorts(content string) []int {
	var ports []int
	for _, re := range catalog.PortPatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			port, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if ValidPort(port) {
				ports = append(ports, port)
			}
		}
	}
	return ports
}

// ValidPort reports whether port is within the accepted range
func ValidPort(port int) bool {
	return port >= catalog.MinPort && port <= catalog.MaxPort
}
