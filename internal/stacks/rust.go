// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Rust runtime detector

package stacks

import (
	"regexp"
	"strings"
)

var cargoNameRegex = regexp.MustCompile(`(?m)^name\s*=\s*"([^"]+)"`)

// RustDetector detects Rust projects
type RustDetector struct {
	BaseDetector
}

// NewRustDetector creates a new Rust detector
func NewRustDetector() *RustDetector {
	return &RustDetector{
		BaseDetector: NewBaseDetector(StackRust),
	}
}

// Detect checks for a readable Cargo.toml
func (d *RustDetector) Detect(root string) (Runtime, bool) {
	content, ok := readText(root, "Cargo.toml")
	if !ok {
		return nil, false
	}

	return &RustRuntime{
		PackageName: submatch(cargoNameRegex, content),
		IsWorkspace: strings.Contains(content, "[workspace]"),
	}, true
}
