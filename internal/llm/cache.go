package llm

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const defaultMaxCacheSize = 1000

// cacheEntry keeps the summary plus enough bookkeeping for LRU eviction and
// for a human to recognize an entry when reading the cache file.
type cacheEntry struct {
	Summary      string  `json:"summary"`
	Created      float64 `json:"created"`
	LastAccessed float64 `json:"last_accessed"`
	AccessCount  int     `json:"access_count"`
	TextPreview  string  `json:"text_preview"`
}

type cacheFile struct {
	Cache       map[string]cacheEntry `json:"cache"`
	LastUpdated string                `json:"last_updated"`
	Version     string                `json:"version"`
}

// Cache is a content-hash-keyed summary store. Entries live in memory and,
// when a path is configured, persist as one JSON file written with a whole
// file atomic replace. Concurrent writers of the same file race and the last
// writer wins; that is acceptable because entries are idempotent, the same
// text always summarizes to an equivalent value.
type Cache struct {
	mu      sync.Mutex
	path    string
	maxSize int
	entries map[string]cacheEntry
}

// OpenCache loads the cache at path, or starts empty when the file is
// missing or unreadable. An empty path keeps the cache memory-only.
func OpenCache(path string, maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	c := &Cache{path: path, maxSize: maxSize, entries: map[string]cacheEntry{}}
	if path == "" {
		return c
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var f cacheFile
	if err := json.Unmarshal(data, &f); err != nil || f.Cache == nil {
		return c
	}
	c.entries = f.Cache
	return c
}

func hashText(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached summary for text, if present.
func (c *Cache) Get(text string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := hashText(text)
	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	entry.LastAccessed = now()
	entry.AccessCount++
	c.entries[key] = entry
	return entry.Summary, true
}

// Put stores a summary and persists the whole cache.
func (c *Cache) Put(text, summary string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	preview := text
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	ts := now()
	c.entries[hashText(text)] = cacheEntry{
		Summary:      summary,
		Created:      ts,
		LastAccessed: ts,
		AccessCount:  1,
		TextPreview:  preview,
	}
	return c.save()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry and persists the empty cache.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]cacheEntry{}
	return c.save()
}

// evictOldest removes the least recently used fifth of the cache. Caller
// holds the lock.
func (c *Cache) evictOldest() {
	type keyed struct {
		key  string
		last float64
	}
	items := make([]keyed, 0, len(c.entries))
	for k, e := range c.entries {
		items = append(items, keyed{key: k, last: e.LastAccessed})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].last < items[j].last })

	n := len(items) / 5
	if n < 1 {
		n = 1
	}
	for _, it := range items[:n] {
		delete(c.entries, it.key)
	}
}

// save writes the cache file via temp-and-rename. Caller holds the lock.
func (c *Cache) save() error {
	if c.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	data, err := json.MarshalIndent(cacheFile{
		Cache:       c.entries,
		LastUpdated: time.Now().Format(time.RFC3339),
		Version:     "1.0",
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), "llm-cache-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

func now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
