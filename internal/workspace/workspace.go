// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Workspace creation and run IDs

package workspace

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	idMutex sync.Mutex
	// lastMinute and lastCounter keep IDs unique within the same minute
	lastMinute  string
	lastCounter int
)

// ResetRunIDState resets the run ID generator (for testing)
func ResetRunIDState() {
	idMutex.Lock()
	defer idMutex.Unlock()
	lastMinute = ""
	lastCounter = 0
}

// GenerateRunID creates a run ID of the form sp-YYYYMMDD-HHMM-xxx, where xxx
// is random hex for the first ID of a minute and a counter afterwards.
// Safe for concurrent use.
func GenerateRunID() (string, error) {
	idMutex.Lock()
	defer idMutex.Unlock()

	minute := time.Now().Format("20060102-1504")
	if minute == lastMinute {
		lastCounter++
		return fmt.Sprintf("%s-%s-%03d", RunIDPrefix, minute, lastCounter), nil
	}

	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	lastMinute = minute
	lastCounter = 0
	return fmt.Sprintf("%s-%s-%s", RunIDPrefix, minute, hex.EncodeToString(buf)[:3]), nil
}

// DefaultBaseDir is the directory workspaces are created under by default
func DefaultBaseDir() string {
	return os.TempDir()
}

// New creates <base>/.stackprobe-tmp/<run-id>/repo. A nil config uses the
// OS temp directory and removes the workspace on Cleanup.
func New(config *WorkspaceConfig) (*Workspace, error) {
	if config == nil {
		config = &WorkspaceConfig{}
	}
	baseDir := config.BaseDir
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}

	runID, err := GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}

	ws := &Workspace{
		RunID:   runID,
		Path:    filepath.Join(baseDir, TempDirPrefix, runID),
		BaseDir: baseDir,
		keep:    config.Keep,
	}

	if err := os.MkdirAll(ws.RepoPath(), 0o755); err != nil {
		_ = os.RemoveAll(ws.Path)
		return nil, fmt.Errorf("failed to create workspace directory %s: %w", ws.Path, err)
	}

	return ws, nil
}

// RepoPath returns the directory the repository is cloned into
func (w *Workspace) RepoPath() string {
	return filepath.Join(w.Path, RepoSubdir)
}

// Exists checks if the workspace directory exists
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.Path)
	return err == nil && info.IsDir()
}

// SetKeep sets whether to preserve the workspace on cleanup
func (w *Workspace) SetKeep(keep bool) {
	w.keep = keep
}

// ShouldKeep returns whether the workspace should be preserved
func (w *Workspace) ShouldKeep() bool {
	return w.keep
}

func (w *Workspace) String() string {
	return fmt.Sprintf("Workspace{RunID: %s, Path: %s, Keep: %v}", w.RunID, w.Path, w.keep)
}
