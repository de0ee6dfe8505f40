// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Existing containerization artifacts

package stacks

import "github.com/sony-level/stackprobe/internal/catalog"

// DetectDockerArtifacts probes the repository root for a Dockerfile, any
// compose file and a .dockerignore
func DetectDockerArtifacts(root string) DockerArtifacts {
	return DockerArtifacts{
		Dockerfile:    fileExists(root, "Dockerfile"),
		DockerCompose: anyExists(root, catalog.ComposeFiles...),
		Dockerignore:  fileExists(root, ".dockerignore"),
	}
}
