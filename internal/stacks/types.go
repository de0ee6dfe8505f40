// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Runtime detection types and interfaces

package stacks

// Detector defines the interface for runtime classifiers.
// Detect must never fail: unreadable or malformed manifests count as absent.
type Detector interface {
	Name() string
	Detect(root string) (Runtime, bool)
}

// Runtime is the result of a single classifier. Exactly one of the variants
// below; values are not modified after detection.
type Runtime interface {
	Kind() string
	isRuntime()
}

// Runtime names
const (
	StackNode   = "node"
	StackPython = "python"
	StackGo     = "go"
	StackRust   = "rust"
	StackJava   = "java"
	StackDotNet = "dotnet"
)

// NodeRuntime describes a Node.js project
type NodeRuntime struct {
	Framework      *string           `json:"framework"`
	PackageManager string            `json:"package_manager"`
	Scripts        map[string]string `json:"scripts"`
	TypeScript     bool              `json:"typescript"`
	NodeVersion    *string           `json:"node_version"`
	Dependencies   []string          `json:"dependencies"`
}

// PythonRuntime describes a Python project
type PythonRuntime struct {
	Framework      *string  `json:"framework"`
	PackageManager string   `json:"package_manager"`
	EntryPoint     *string  `json:"entry_point"`
	Dependencies   []string `json:"dependencies"`
	IsML           bool     `json:"is_ml"`
}

// GoRuntime describes a Go module
type GoRuntime struct {
	Module     *string `json:"module"`
	GoVersion  *string `json:"go_version"`
	EntryPoint *string `json:"entry_point"`
}

// RustRuntime describes a Cargo project
type RustRuntime struct {
	PackageName *string `json:"package_name"`
	IsWorkspace bool    `json:"is_workspace"`
}

// JavaRuntime describes a Maven or Gradle project
type JavaRuntime struct {
	BuildTool string  `json:"build_tool"`
	Framework *string `json:"framework"`
}

// DotnetRuntime describes a .NET project or solution
type DotnetRuntime struct {
	Language    string  `json:"language"`
	Framework   *string `json:"framework"`
	ProjectFile *string `json:"project_file"`
}

func (*NodeRuntime) Kind() string   { return StackNode }
func (*PythonRuntime) Kind() string { return StackPython }
func (*GoRuntime) Kind() string     { return StackGo }
func (*RustRuntime) Kind() string   { return StackRust }
func (*JavaRuntime) Kind() string   { return StackJava }
func (*DotnetRuntime) Kind() string { return StackDotNet }

func (*NodeRuntime) isRuntime()   {}
func (*PythonRuntime) isRuntime() {}
func (*GoRuntime) isRuntime()     {}
func (*RustRuntime) isRuntime()   {}
func (*JavaRuntime) isRuntime()   {}
func (*DotnetRuntime) isRuntime() {}

// DockerArtifacts records containerization files already present in a repository
type DockerArtifacts struct {
	Dockerfile    bool `json:"dockerfile" yaml:"dockerfile"`
	DockerCompose bool `json:"docker_compose" yaml:"docker_compose"`
	Dockerignore  bool `json:"dockerignore" yaml:"dockerignore"`
}
