// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Port patterns and file selection tables

package catalog

import "regexp"

// Valid listening port range, inclusive. Anything outside is treated as an
// unrelated number rather than a port.
const (
	MinPort = 1000
	MaxPort = 65535
)

// PortPatterns capture a port number in common listen/bind idioms
var PortPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.listen\s*\(\s*(\d+)`), // .listen(3000)
	regexp.MustCompile(`(?i)PORT\s*[=:]\s*(\d+)`),   // PORT=3000 or PORT: 3000
	regexp.MustCompile(`(?i)port\s*[=:]\s*(\d+)`),   // port=3000 or port: 3000
	regexp.MustCompile(`(?i)--port\s+(\d+)`),        // --port 3000
	regexp.MustCompile(`(?i)-p\s+(\d+)`),            // -p 3000
}

// ServiceExtensions are the source extensions searched for service signatures
var ServiceExtensions = []string{".py", ".js", ".ts", ".go", ".java", ".cs", ".rb", ".php"}

// PortExtensions are the extensions searched for port declarations
var PortExtensions = []string{".py", ".js", ".ts", ".go", ".java", ".yml", ".yaml", ".env"}

// ServiceExcludes are path markers skipped by the service scanner
var ServiceExcludes = []string{"node_modules", "vendor", ".git", "__pycache__", "venv"}

// PortExcludes are path markers skipped by the port scanner
var PortExcludes = []string{"node_modules", "vendor", ".git", "__pycache__"}

// ConfigFiles are root-level files searched for service signatures after the
// source tree pass
var ConfigFiles = []string{
	"compose.yml",
	"compose.yaml",
	"docker-compose.yml",
	"docker-compose.yaml",
	".env",
	".env.example",
}

// ComposeFiles are the compose file names probed for existing artifacts
var ComposeFiles = []string{"compose.yml", "compose.yaml", "docker-compose.yml", "docker-compose.yaml"}
