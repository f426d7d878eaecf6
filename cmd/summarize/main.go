package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/llm"
	"github.com/weekly-statutes/gazette-tracker/internal/llm/openai"
)

// Exercises the summary cache: summarize the same text N times and report
// how many calls actually reached the API.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: summarize <text-file|-> [times]")
		os.Exit(2)
	}
	times := 1
	if len(os.Args) >= 3 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			times = n
		}
	}

	var data []byte
	var err error
	if os.Args[1] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(os.Args[1])
	}
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	cached := llm.NewCached(client, llm.OpenCache(cfg.LLM.CachePath, cfg.LLM.CacheMaxSize), logger)

	text := string(data)
	for i := 1; i <= times; i++ {
		runCtx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
		start := time.Now()
		summary, err := cached.Summarize(runCtx, text)
		cancel()
		if err != nil {
			logger.Error("summarize.error", "iter", i, "err", err)
			continue
		}
		logger.Info("summarize.ok", "iter", i, "elapsed_ms", time.Since(start).Milliseconds(), "chars", len(summary))
		if i == 1 {
			os.Stdout.WriteString(summary + "\n")
		}
	}

	stats := cached.Stats()
	logger.Info("done", "requests", stats.Requests, "cache_hits", stats.CacheHits, "api_calls", stats.APICalls)
}
