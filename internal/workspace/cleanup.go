// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Workspace removal

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cleanup removes the workspace unless it is marked to be kept
func (w *Workspace) Cleanup() error {
	if w.keep || !w.Exists() {
		return nil
	}

	if err := os.RemoveAll(w.Path); err != nil {
		return fmt.Errorf("failed to cleanup workspace %s: %w", w.Path, err)
	}

	// Drop the shared parent once the last workspace is gone
	_ = os.Remove(filepath.Join(w.BaseDir, TempDirPrefix))
	return nil
}

// CleanupAll removes every workspace under baseDir
func CleanupAll(baseDir string) error {
	tempDir, ok, err := tempRoot(baseDir)
	if err != nil || !ok {
		return err
	}

	if err := os.RemoveAll(tempDir); err != nil {
		return fmt.Errorf("failed to cleanup all workspaces: %w", err)
	}
	return nil
}

// CleanupStale removes workspaces under baseDir last modified at least
// maxAge ago and returns how many were removed
func CleanupStale(baseDir string, maxAge time.Duration) (int, error) {
	tempDir, ok, err := tempRoot(baseDir)
	if err != nil || !ok {
		return 0, err
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read temp directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(tempDir, entry.Name())); err == nil {
			cleaned++
		}
	}

	_ = os.Remove(tempDir)
	return cleaned, nil
}

// tempRoot returns the workspace parent under baseDir and whether it exists
func tempRoot(baseDir string) (string, bool, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	tempDir := filepath.Join(baseDir, TempDirPrefix)

	info, err := os.Stat(tempDir)
	if os.IsNotExist(err) {
		return tempDir, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to stat temp directory %s: %w", tempDir, err)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("%s is not a directory", tempDir)
	}
	return tempDir, true, nil
}
