// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// .NET runtime detector

package stacks

import (
	"os"
	"path/filepath"
)

var dotnetFrameworks = []marker{
	{needles: []string{"Microsoft.AspNetCore", "Microsoft.NET.Sdk.Web"}, label: "aspnet"},
	{needles: []string{"Microsoft.NET.Sdk.Worker"}, label: "worker"},
}

// DotNetDetector detects .NET projects and solutions
type DotNetDetector struct {
	BaseDetector
}

// NewDotNetDetector creates a new .NET detector
func NewDotNetDetector() *DotNetDetector {
	return &DotNetDetector{
		BaseDetector: NewBaseDetector(StackDotNet),
	}
}

// Detect checks for *.csproj, *.fsproj or *.sln at the repository root.
// ProjectFile is the absolute path of the chosen project file.
func (d *DotNetDetector) Detect(root string) (Runtime, bool) {
	csproj := rootGlob(root, "*.csproj")
	fsproj := rootGlob(root, "*.fsproj")
	sln := rootGlob(root, "*.sln")

	if len(csproj) == 0 && len(fsproj) == 0 && len(sln) == 0 {
		return nil, false
	}

	rt := &DotnetRuntime{Language: "unknown"}

	var projectFile string
	switch {
	case len(csproj) > 0:
		rt.Language = "csharp"
		projectFile = csproj[0]
	case len(fsproj) > 0:
		rt.Language = "fsharp"
		projectFile = fsproj[0]
	}

	if projectFile != "" {
		rt.ProjectFile = strPtr(filepath.Join(root, projectFile))
		if content, ok := readText(root, projectFile); ok {
			rt.Framework = firstContained(content, dotnetFrameworks)
		}
	}

	return rt, true
}

// rootGlob returns the sorted names of root files matching pattern.
// Matching is done on entry names so metacharacters in root are harmless.
func rootGlob(root, pattern string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(pattern, entry.Name()); !ok {
			continue
		}
		if isFile(filepath.Join(root, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	return names
}
