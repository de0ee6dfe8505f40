// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Ordered runtime classification

package stacks

import (
	"io"
	"log/slog"
)

// Chain runs detectors in a fixed order and stops at the first match.
// A repository with both package.json and requirements.txt is Node: the
// order is the tie-break.
type Chain struct {
	detectors []Detector
	logger    *slog.Logger
}

// NewChain creates a chain with the default order:
// Node, Python, Go, Rust, Java, .NET
func NewChain() *Chain {
	return NewChainWithDetectors(
		NewNodeDetector(),
		NewPythonDetector(),
		NewGoDetector(),
		NewRustDetector(),
		NewJavaDetector(),
		NewDotNetDetector(),
	)
}

// NewChainWithDetectors creates a chain with custom detectors, tried in the given order
func NewChainWithDetectors(detectors ...Detector) *Chain {
	return &Chain{
		detectors: detectors,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for debug tracing
func (c *Chain) WithLogger(logger *slog.Logger) *Chain {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Detect returns the first detector's result, or false when nothing matched
func (c *Chain) Detect(root string) (Runtime, bool) {
	for _, detector := range c.detectors {
		if rt, found := detector.Detect(root); found {
			c.logger.Debug("runtime detected", slog.String("detector", detector.Name()))
			return rt, true
		}
		c.logger.Debug("runtime not matched", slog.String("detector", detector.Name()))
	}
	return nil, false
}

// Detectors returns the detectors in evaluation order
func (c *Chain) Detectors() []Detector {
	return c.detectors
}
