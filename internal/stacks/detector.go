// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Base detector functionality

package stacks

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// BaseDetector provides common functionality for detectors
type BaseDetector struct {
	name string
}

// NewBaseDetector creates a new base detector
func NewBaseDetector(name string) BaseDetector {
	return BaseDetector{name: name}
}

// Name returns the detector name
func (d BaseDetector) Name() string {
	return d.name
}

// Helper functions for detectors

// fileExists reports whether root/name exists (file or directory)
func fileExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}

// isFile reports whether path exists and is not a directory
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// anyExists reports whether any of the names exist under root
func anyExists(root string, names ...string) bool {
	for _, name := range names {
		if fileExists(root, name) {
			return true
		}
	}
	return false
}

// readText reads root/name. Any error is reported as absent.
func readText(root, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// submatch returns the first capture group of re in content
func submatch(re *regexp.Regexp, content string) *string {
	m := re.FindStringSubmatch(content)
	if len(m) < 2 {
		return nil
	}
	return strPtr(m[1])
}

// firstContained returns the label of the first marker found in content
func firstContained(content string, markers []marker) *string {
	for _, m := range markers {
		for _, needle := range m.needles {
			if strings.Contains(content, needle) {
				return strPtr(m.label)
			}
		}
	}
	return nil
}

// firstPresent returns the label of the first key present in set
func firstPresent(set map[string]bool, markers []marker) *string {
	for _, m := range markers {
		for _, needle := range m.needles {
			if set[needle] {
				return strPtr(m.label)
			}
		}
	}
	return nil
}

// marker associates one or more evidence strings with a label
type marker struct {
	needles []string
	label   string
}

func strPtr(s string) *string {
	return &s
}

// uniqueStrings removes duplicates from a slice, keeping first occurrences
func uniqueStrings(slice []string) []string {
	seen := make(map[string]bool, len(slice))
	result := []string{}

	for _, s := range slice {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	return result
}
