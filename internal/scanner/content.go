// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// File content loading shared by the scanners

package scanner

import (
	"os"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/encoding/unicode"
)

// ContentReader loads files as text. Invalid UTF-8 is replaced with U+FFFD
// rather than failing, and contents are memoized so the service and port
// scanners read each file once. The cache is bounded both by entry count
// and by total bytes. Safe for concurrent use.
type ContentReader struct {
	cache       *lru.Cache[string, string]
	maxFileSize int64
	maxBytes    int64
	cachedBytes atomic.Int64
}

// NewContentReader creates a reader caching up to cacheSize files and
// DefaultCacheBytes of content. A cacheSize <= 0 disables caching; a
// maxFileSize <= 0 disables the size limit.
func NewContentReader(cacheSize int, maxFileSize int64) *ContentReader {
	r := &ContentReader{maxFileSize: maxFileSize, maxBytes: DefaultCacheBytes}
	if cacheSize > 0 {
		// NewWithEvict only fails for a non-positive size
		r.cache, _ = lru.NewWithEvict[string, string](cacheSize, func(_ string, content string) {
			r.cachedBytes.Add(-int64(len(content)))
		})
	}
	return r
}

// WithCacheBytes sets the byte budget of the cache. Values <= 0 keep the
// current budget.
func (r *ContentReader) WithCacheBytes(n int64) *ContentReader {
	if n > 0 {
		r.maxBytes = n
	}
	return r
}

// CachedBytes returns the total size of the cached contents
func (r *ContentReader) CachedBytes() int64 {
	return r.cachedBytes.Load()
}

// Read returns the text of path. Unreadable or oversized files report false.
func (r *ContentReader) Read(path string) (string, bool) {
	if r.cache != nil {
		if content, ok := r.cache.Get(path); ok {
			return content, true
		}
	}

	if r.maxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil || info.Size() > r.maxFileSize {
			return "", false
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	content := decode(data)
	r.store(path, content)
	return content, true
}

// store caches content, evicting the least recently used entries until the
// byte budget holds. Contents larger than the whole budget are not cached.
func (r *ContentReader) store(path, content string) {
	size := int64(len(content))
	if r.cache == nil || size > r.maxBytes {
		return
	}
	// Both scanners may load the same file concurrently
	if found, _ := r.cache.ContainsOrAdd(path, content); found {
		return
	}
	r.cachedBytes.Add(size)

	for r.cachedBytes.Load() > r.maxBytes {
		if _, _, ok := r.cache.RemoveOldest(); !ok {
			return
		}
	}
}

// decode converts raw bytes to valid UTF-8 text
func decode(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(out)
}
