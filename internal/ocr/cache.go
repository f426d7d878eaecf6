package ocr

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// pageCache persists per-page texts keyed by the hash of the PDF's bytes, so
// repeated lookups against the same gazette never re-run the external
// binaries. Entries are never authoritative over fresh scans; deleting the
// cache directory is always safe.
type pageCache struct {
	dir string
}

type cacheEntry struct {
	Pages []string `json:"pages"`
}

// openCache hashes the PDF and returns the cache handle. A nil cache (with
// no error) means caching is disabled by configuration.
func (s *Scanner) openCache(path string) (*pageCache, string, error) {
	if s.cfg.CacheDir == "" {
		return nil, "", nil
	}
	hash, err := fileHash(path)
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(s.cfg.CacheDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating cache dir: %w", err)
	}
	return &pageCache{dir: s.cfg.CacheDir}, hash, nil
}

func (c *pageCache) lookup(hash string) ([]string, bool) {
	data, err := os.ReadFile(c.path(hash))
	if err != nil {
		return nil, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return entry.Pages, true
}

// store writes the entry with a temp-file-and-rename so concurrent scanners
// of the same gazette never observe a torn file; last writer wins.
func (c *pageCache) store(hash string, pages []string) error {
	data, err := json.Marshal(cacheEntry{Pages: pages})
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, "ocr-*.tmp")
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
	return os.Rename(tmp.Name(), c.path(hash))
}

func (c *pageCache) path(hash string) string {
	return filepath.Join(c.dir, hash+".json")
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
