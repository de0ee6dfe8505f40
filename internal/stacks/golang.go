// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Go runtime detector

package stacks

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	goModuleRegex  = regexp.MustCompile(`(?m)^module\s+(\S+)`)
	goVersionRegex = regexp.MustCompile(`(?m)^go\s+(\d+\.\d+)`)
)

// GoDetector detects Go projects
type GoDetector struct {
	BaseDetector
}

// NewGoDetector creates a new Go detector
func NewGoDetector() *GoDetector {
	return &GoDetector{
		BaseDetector: NewBaseDetector(StackGo),
	}
}

// Detect checks for a readable go.mod
func (d *GoDetector) Detect(root string) (Runtime, bool) {
	content, ok := readText(root, "go.mod")
	if !ok {
		return nil, false
	}

	return &GoRuntime{
		Module:     submatch(goModuleRegex, content),
		GoVersion:  submatch(goVersionRegex, content),
		EntryPoint: goEntryPoint(root),
	}, true
}

// goEntryPoint returns "." for a root main package, otherwise the first
// cmd/<name> directory (by name) that holds a main.go
func goEntryPoint(root string) *string {
	if isFile(filepath.Join(root, "main.go")) {
		return strPtr(".")
	}

	// os.ReadDir returns entries sorted by filename
	entries, err := os.ReadDir(filepath.Join(root, "cmd"))
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if isFile(filepath.Join(root, "cmd", entry.Name(), "main.go")) {
			return strPtr("./cmd/" + entry.Name())
		}
	}
	return nil
}
