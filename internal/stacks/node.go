// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Node.js runtime detector

package stacks

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// nodeFrameworks is checked in order; the first declared dependency wins
var nodeFrameworks = []marker{
	{needles: []string{"next"}, label: "nextjs"},
	{needles: []string{"nuxt"}, label: "nuxt"},
	{needles: []string{"@angular/core"}, label: "angular"},
	{needles: []string{"vue"}, label: "vue"},
	{needles: []string{"react"}, label: "react"},
	{needles: []string{"express"}, label: "express"},
	{needles: []string{"fastify"}, label: "fastify"},
	{needles: []string{"koa"}, label: "koa"},
	{needles: []string{"hono"}, label: "hono"},
}

// nodeLockFiles is checked in order; npm is assumed when none is present
var nodeLockFiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
}

// NodeDetector detects Node.js projects
type NodeDetector struct {
	BaseDetector
}

// NewNodeDetector creates a new Node.js detector
func NewNodeDetector() *NodeDetector {
	return &NodeDetector{
		BaseDetector: NewBaseDetector(StackNode),
	}
}

// Detect checks for a package.json that parses as a JSON object
func (d *NodeDetector) Detect(root string) (Runtime, bool) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, false
	}

	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkg); err != nil || pkg == nil {
		return nil, false
	}

	deps := uniqueStrings(append(objectKeys(pkg["dependencies"]), objectKeys(pkg["devDependencies"])...))
	depSet := make(map[string]bool, len(deps))
	for _, dep := range deps {
		depSet[dep] = true
	}

	rt := &NodeRuntime{
		Framework:      firstPresent(depSet, nodeFrameworks),
		PackageManager: "npm",
		Scripts:        map[string]string{},
		TypeScript:     depSet["typescript"] || fileExists(root, "tsconfig.json"),
		Dependencies:   deps,
	}

	for _, lock := range nodeLockFiles {
		if fileExists(root, lock.file) {
			rt.PackageManager = lock.manager
			break
		}
	}

	// scripts and engines are informational; a malformed value is ignored
	if raw, ok := pkg["scripts"]; ok {
		var scripts map[string]string
		if json.Unmarshal(raw, &scripts) == nil && scripts != nil {
			rt.Scripts = scripts
		}
	}
	if raw, ok := pkg["engines"]; ok {
		var engines struct {
			Node *string `json:"node"`
		}
		if json.Unmarshal(raw, &engines) == nil {
			rt.NodeVersion = engines.Node
		}
	}

	return rt, true
}

// objectKeys returns the keys of a JSON object in document order.
// Anything that is not an object yields no keys.
func objectKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
		keys = append(keys, key)
	}
	return keys
}
