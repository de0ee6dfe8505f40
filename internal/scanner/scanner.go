// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository tree walking

package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// Walk visits every file under root whose extension is in opts.Extensions
// and whose root-relative path contains none of opts.Excludes. Exclusion is
// a substring test on the slash-separated relative path, so "vendor" also
// excludes "vendor-tools/x.go". Entries that cannot be read are skipped.
// Files are visited in lexical order.
func Walk(ctx context.Context, root string, opts WalkOptions, fn func(path, relPath string) error) error {
	extensions := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[ext] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// Unreadable entry: skip it, keep walking
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != root && isExcluded(relPath, opts.Excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if !extensions[filepath.Ext(d.Name())] || isExcluded(relPath, opts.Excludes) {
			return nil
		}

		return fn(path, relPath)
	})
}

// isExcluded checks if any marker occurs in relPath
func isExcluded(relPath string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(relPath, marker) {
			return true
		}
	}
	return false
}
