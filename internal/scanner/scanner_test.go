// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Tests for the service and port scanners

package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/stackprobe/internal/scanner"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func scanServices(t *testing.T, root string, opts scanner.Options) []scanner.ServiceFinding {
	t.Helper()
	reader := scanner.NewContentReader(scanner.DefaultCacheSize, 0)
	findings, err := scanner.NewServiceScanner(reader, opts).Scan(context.Background(), root)
	require.NoError(t, err)
	return findings
}

func serviceNames(findings []scanner.ServiceFinding) []string {
	names := make([]string, 0, len(findings))
	for _, f := range findings {
		names = append(names, f.Name)
	}
	return names
}

func TestServiceScanner_OneFindingPerService(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.py":     "DB = 'postgres://localhost/a'",
		"b.py":     "DB = 'postgres://localhost/b'",
		"c.js":     "const db = 'postgres://localhost/c'",
		"lib/d.go": `const dsn = "postgres://localhost/d"`,
		"lib/e.ts": "export const dsn = 'postgres://localhost/e'",
	})

	findings := scanServices(t, root, scanner.Options{})

	require.Len(t, findings, 1)
	assert.Equal(t, scanner.ServiceFinding{Name: "postgresql", Image: "postgres:16-alpine", Port: 5432}, findings[0])
}

func TestServiceScanner_DiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.py": "cache = 'redis://cache'",
		"b.py": "client = 'mongodb://docs'\ndb = 'postgres://main'",
	})

	findings := scanServices(t, root, scanner.Options{})

	// Walk order first, catalog order within a file
	assert.Equal(t, []string{"redis", "postgresql", "mongodb"}, serviceNames(findings))
}

func TestServiceScanner_CaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"app.rb": "url = 'AMQP://broker'"})

	assert.Equal(t, []string{"rabbitmq"}, serviceNames(scanServices(t, root, scanner.Options{})))
}

func TestServiceScanner_Excludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"node_modules/lib/index.js": "redis://x",
		"vendor-tools/tool.go":      "mongodb://x",
		"venv/lib/site.py":          "amqp://x",
		"generated/client.py":       "memcached",
		"app.py":                    "print('hello')",
	})

	assert.Empty(t, scanServices(t, root, scanner.Options{ExtraExcludes: []string{"generated", ""}}))
}

func TestServiceScanner_ExcludedWordInRootPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "vendor", "project")
	writeFiles(t, root, map[string]string{"main.go": `conn := "redis://cache"`})

	assert.Equal(t, []string{"redis"}, serviceNames(scanServices(t, root, scanner.Options{})))
}

func TestServiceScanner_IgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"README.md":   "Uses postgres:// for storage",
		"notes.txt":   "redis://",
		"sub/.env":    "MONGO_URL=mongodb://db",
		"config.yaml": "kafka: true",
	})

	assert.Empty(t, scanServices(t, root, scanner.Options{}))
}

func TestServiceScanner_RootConfigFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"app.py":             "import os",
		".env":               "REDIS_URL=redis://cache:6379",
		"docker-compose.yml": "services:\n  db:\n    image: mongo:7\n    environment:\n      - MONGO_INITDB_ROOT_USERNAME=root\n",
	})

	findings := scanServices(t, root, scanner.Options{})

	// Compose files are scanned before .env
	assert.Equal(t, []string{"mongodb", "redis"}, serviceNames(findings))
}

func TestServiceScanner_SourceBeforeConfig(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"compose.yml": "redis://cache",
		"z/app.py":    "postgres://main",
	})

	assert.Equal(t, []string{"postgresql", "redis"}, serviceNames(scanServices(t, root, scanner.Options{})))
}

func TestServiceScanner_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	content := append([]byte{0xff, 0xfe, 0x00, 0xc3}, []byte("\nclient = 'redis://cache'\n")...)
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.py"), content, 0o644))

	assert.Equal(t, []string{"redis"}, serviceNames(scanServices(t, root, scanner.Options{})))
}

func TestServiceScanner_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"app.py": "redis://cache"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := scanner.NewContentReader(0, 0)
	_, err := scanner.NewServiceScanner(reader, scanner.Options{}).Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPortScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"server.js":          "app.listen(8080)\nconst big = { port: 70000 }\n",
		"run.py":             "# docker run -p 42 image\nPORT = 3000\n",
		"deploy/values.yaml": "port: 8080\n",
		".env":               "PORT=5000\n",
		"cmd/main.go":        `flag.Int("port", 0, "") // --port 9090`,
		"README.md":          "port: 7777",
		"node_modules/x.js":  "app.listen(4444)",
		"venv/lib/server.py": "port = 6000",
		"__pycache__/c.py":   "port = 6001",
	})

	reader := scanner.NewContentReader(scanner.DefaultCacheSize, 0)
	ports, err := scanner.NewPortScanner(reader, scanner.Options{}).Scan(context.Background(), root)
	require.NoError(t, err)

	// venv is only excluded from the service scanner
	assert.Equal(t, []int{3000, 5000, 6000, 8080, 9090}, ports)
}

func TestPortScanner_Empty(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"app.py": "print('no ports here')"})

	reader := scanner.NewContentReader(0, 0)
	ports, err := scanner.NewPortScanner(reader, scanner.Options{}).Scan(context.Background(), root)
	require.NoError(t, err)
	assert.NotNil(t, ports)
	assert.Empty(t, ports)
}

func TestExtractPorts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{"listen", "server.listen( 3000 )", []int{3000}},
		{"flag", "uvicorn main:app --port 8000", []int{8000}},
		{"short flag", "docker run -p 8081:80 nginx", []int{8081}},
		{"below range", "port = 999", nil},
		{"lower bound", "port = 1000", []int{1000, 1000}},
		{"upper bound", "--port 65535", []int{65535}},
		{"above range", "--port 65536", nil},
		{"no match", "const x = 8080", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanner.ExtractPorts(tt.content))
		})
	}
}

func TestContentReader(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.py")
	require.NoError(t, os.WriteFile(path, []byte("ok \xff done"), 0o644))

	t.Run("replaces invalid bytes", func(t *testing.T) {
		content, ok := scanner.NewContentReader(0, 0).Read(path)
		require.True(t, ok)
		assert.Equal(t, "ok � done", content)
	})

	t.Run("serves cached content", func(t *testing.T) {
		reader := scanner.NewContentReader(4, 0)
		first, ok := reader.Read(path)
		require.True(t, ok)
		require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

		second, ok := reader.Read(path)
		require.True(t, ok)
		assert.Equal(t, first, second)
	})

	t.Run("byte budget evicts oldest", func(t *testing.T) {
		a := filepath.Join(root, "a.py")
		b := filepath.Join(root, "b.py")
		require.NoError(t, os.WriteFile(a, []byte("aaaaaaaa"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("bbbbbbbb"), 0o644))

		reader := scanner.NewContentReader(8, 0).WithCacheBytes(10)
		_, ok := reader.Read(a)
		require.True(t, ok)
		_, ok = reader.Read(b)
		require.True(t, ok)
		assert.Equal(t, int64(8), reader.CachedBytes())

		require.NoError(t, os.WriteFile(a, []byte("changed"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("changed"), 0o644))

		content, _ := reader.Read(b)
		assert.Equal(t, "bbbbbbbb", content, "b is still cached")
		content, _ = reader.Read(a)
		assert.Equal(t, "changed", content, "a was evicted")
		assert.LessOrEqual(t, reader.CachedBytes(), int64(10))
	})

	t.Run("content over budget is not cached", func(t *testing.T) {
		big := filepath.Join(root, "large.py")
		require.NoError(t, os.WriteFile(big, make([]byte, 64), 0o644))

		reader := scanner.NewContentReader(8, 0).WithCacheBytes(16)
		_, ok := reader.Read(big)
		require.True(t, ok)
		assert.Zero(t, reader.CachedBytes())
	})

	t.Run("missing file", func(t *testing.T) {
		_, ok := scanner.NewContentReader(4, 0).Read(filepath.Join(root, "missing.py"))
		assert.False(t, ok)
	})

	t.Run("size limit", func(t *testing.T) {
		big := filepath.Join(root, "big.py")
		require.NoError(t, os.WriteFile(big, make([]byte, 64), 0o644))
		_, ok := scanner.NewContentReader(0, 32).Read(big)
		assert.False(t, ok)
	})
}
