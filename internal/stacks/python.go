// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Python runtime detector

package stacks

import (
	"regexp"
	"strings"
)

var (
	// pyprojectDepRegex picks the leading identifier of every pyproject line
	pyprojectDepRegex = regexp.MustCompile(`(?m)^\s*["']?([a-zA-Z0-9_-]+)`)
	// requirementRegex picks the package name of a requirements line
	requirementRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)`)
)

// pythonIndicators mark a directory as a Python project
var pythonIndicators = []string{
	"requirements.txt",
	"pyproject.toml",
	"setup.py",
	"Pipfile",
	"poetry.lock",
}

// pythonFrameworks is checked in order against the lower-cased dependencies
var pythonFrameworks = []marker{
	{needles: []string{"fastapi"}, label: "fastapi"},
	{needles: []string{"django"}, label: "django"},
	{needles: []string{"flask"}, label: "flask"},
	{needles: []string{"starlette"}, label: "starlette"},
	{needles: []string{"tornado"}, label: "tornado"},
	{needles: []string{"streamlit"}, label: "streamlit"},
	{needles: []string{"gradio"}, label: "gradio"},
}

// pythonMLPackages flag a machine learning / data science project
var pythonMLPackages = []string{"torch", "tensorflow", "keras", "scikit-learn", "pandas", "numpy"}

// pythonEntryPoints are checked in order at the repository root
var pythonEntryPoints = []string{"main.py", "app.py", "run.py", "server.py", "manage.py"}

// PythonDetector detects Python projects
type PythonDetector struct {
	BaseDetector
}

// NewPythonDetector creates a new Python detector
func NewPythonDetector() *PythonDetector {
	return &PythonDetector{
		BaseDetector: NewBaseDetector(StackPython),
	}
}

// Detect checks if the project uses Python
func (d *PythonDetector) Detect(root string) (Runtime, bool) {
	if !anyExists(root, pythonIndicators...) {
		return nil, false
	}

	var deps []string
	packageManager := "pip"

	// pyproject.toml (modern Python)
	if content, ok := readText(root, "pyproject.toml"); ok {
		if strings.Contains(content, "[tool.poetry]") {
			packageManager = "poetry"
		} else if strings.Contains(content, "[tool.pdm]") {
			packageManager = "pdm"
		}

		for _, m := range pyprojectDepRegex.FindAllStringSubmatch(content, -1) {
			deps = append(deps, m[1])
		}
	}

	// requirements.txt (pip)
	if content, ok := readText(root, "requirements.txt"); ok {
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if m := requirementRegex.FindStringSubmatch(line); m != nil {
				deps = append(deps, strings.ToLower(m[1]))
			}
		}
	}

	// Pipfile wins over any pyproject marker
	if fileExists(root, "Pipfile") {
		packageManager = "pipenv"
	}

	deps = uniqueStrings(deps)
	lowered := make(map[string]bool, len(deps))
	for _, dep := range deps {
		lowered[strings.ToLower(dep)] = true
	}

	rt := &PythonRuntime{
		Framework:      firstPresent(lowered, pythonFrameworks),
		PackageManager: packageManager,
		Dependencies:   deps,
	}

	for _, pkg := range pythonMLPackages {
		if lowered[pkg] {
			rt.IsML = true
			break
		}
	}

	for _, candidate := range pythonEntryPoints {
		if fileExists(root, candidate) {
			rt.EntryPoint = strPtr(candidate)
			break
		}
	}

	return rt, true
}
