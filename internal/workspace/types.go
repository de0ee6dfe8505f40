// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// workspace types/constants

package workspace

const (
	TempDirPrefix = ".stackprobe-tmp"
	RunIDPrefix   = "sp"
	RepoSubdir    = "repo"
)

// Workspace is a throwaway directory holding one cloned repository
type Workspace struct {
	RunID   string
	Path    string
	BaseDir string
	keep    bool
}

// WorkspaceConfig holds configuration for workspace creation
type WorkspaceConfig struct {
	BaseDir string // Defaults to the OS temp directory
	Keep    bool   // Preserve the workspace on Cleanup
}
