package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := OpenCache(path, 0)
	if _, ok := c.Get("some notice text"); ok {
		t.Fatal("empty cache reported a hit")
	}

	if err := c.Put("some notice text", "a summary"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := c.Get("some notice text")
	if !ok || got != "a summary" {
		t.Errorf("Get = %q, %v", got, ok)
	}

	// A fresh handle on the same file sees the persisted entry.
	reopened := OpenCache(path, 0)
	got, ok = reopened.Get("some notice text")
	if !ok || got != "a summary" {
		t.Errorf("reopened Get = %q, %v", got, ok)
	}
}

func TestCacheFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := OpenCache(path, 0)
	if err := c.Put("text", "summary"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var f cacheFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("cache file is not valid JSON: %v", err)
	}
	if len(f.Cache) != 1 {
		t.Errorf("cache entries = %d, want 1", len(f.Cache))
	}
	for _, e := range f.Cache {
		if e.Summary != "summary" || e.TextPreview != "text" || e.AccessCount != 1 {
			t.Errorf("entry = %+v", e)
		}
	}
}

func TestCacheCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := OpenCache(path, 0)
	if c.Len() != 0 {
		t.Errorf("len = %d, want 0", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := OpenCache("", 10)
	for i := 0; i < 10; i++ {
		if err := c.Put(fmt.Sprintf("text %d", i), "s"); err != nil {
			t.Fatal(err)
		}
	}
	// Touch the early entries so the later ones become eviction candidates.
	for i := 0; i < 5; i++ {
		c.Get(fmt.Sprintf("text %d", i))
	}
	if err := c.Put("one more", "s"); err != nil {
		t.Fatal(err)
	}
	if c.Len() > 10 {
		t.Errorf("len = %d, want <= 10", c.Len())
	}
	if _, ok := c.Get("one more"); !ok {
		t.Error("newest entry was evicted")
	}
}

type scriptedSummarizer struct {
	calls int
	err   error
}

func (s *scriptedSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "summary of: " + text[:min(20, len(text))], nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestCachedSummarizeHitsCache(t *testing.T) {
	inner := &scriptedSummarizer{}
	cached := NewCached(inner, OpenCache("", 0), nil)

	ctx := context.Background()
	first, err := cached.Summarize(ctx, "The same notice text")
	if err != nil {
		t.Fatal(err)
	}
	second, err := cached.Summarize(ctx, "The same notice text")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("cache returned a different summary: %q vs %q", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("provider calls = %d, want 1", inner.calls)
	}

	stats := cached.Stats()
	if stats.Requests != 2 || stats.CacheHits != 1 || stats.APICalls != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestCachedSummarizeEmptyInput(t *testing.T) {
	inner := &scriptedSummarizer{}
	cached := NewCached(inner, OpenCache("", 0), nil)
	got, err := cached.Summarize(context.Background(), "   \n ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("summary = %q, want empty", got)
	}
	if inner.calls != 0 {
		t.Errorf("provider calls = %d, want 0", inner.calls)
	}
}

func TestCachedSummarizePropagatesErrors(t *testing.T) {
	wantErr := errors.New("provider down")
	inner := &scriptedSummarizer{err: wantErr}
	cached := NewCached(inner, OpenCache("", 0), nil)
	_, err := cached.Summarize(context.Background(), "text")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
