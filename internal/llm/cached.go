package llm

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Stats counts cache effectiveness for the batch runner's final report.
type Stats struct {
	Requests  int
	CacheHits int
	APICalls  int
}

// Cached wraps a Summarizer with the content-hash cache. Empty input
// short-circuits to an empty summary without touching either.
type Cached struct {
	inner  Summarizer
	cache  *Cache
	logger *slog.Logger

	mu    sync.Mutex
	stats Stats
}

func NewCached(inner Summarizer, cache *Cache, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{inner: inner, cache: cache, logger: logger}
}

func (c *Cached) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	c.mu.Lock()
	c.stats.Requests++
	c.mu.Unlock()

	if summary, ok := c.cache.Get(text); ok {
		c.mu.Lock()
		c.stats.CacheHits++
		c.mu.Unlock()
		c.logger.Debug("summary cache hit", "text_len", len(text))
		return summary, nil
	}

	summary, err := c.inner.Summarize(ctx, text)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.stats.APICalls++
	c.mu.Unlock()

	if err := c.cache.Put(text, summary); err != nil {
		// A cache write failure costs a future API call, nothing more.
		c.logger.Warn("summary cache write failed", "error", err)
	}
	return summary, nil
}

func (c *Cached) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
