package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Summarize condenses notice text via chat/completions. A truncated first
// completion (finish_reason "length" without terminal punctuation) is
// retried once with a 1.4x token budget before the truncated text is
// accepted as-is.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.summarize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	budgets := []int{c.cfg.MaxTokens, c.cfg.MaxTokens * 14 / 10}
	var summary string
	for attempt, maxTokens := range budgets {
		body := map[string]any{
			"model":       c.cfg.Model,
			"temperature": c.cfg.Temperature,
			"max_tokens":  maxTokens,
			"messages": []map[string]any{
				{"role": "user", "content": buildSummaryPrompt(text)},
			},
		}

		endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
		raw, err := c.post(ctx, endpoint, body)
		if err != nil {
			c.logger.Error("llm.summarize.http_error",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return "", err
		}

		var cc struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
				FinishReason string `json:"finish_reason"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(raw, &cc); err != nil {
			c.logger.Error("llm.summarize.decode_error",
				"req_id", rid, "error", err, "raw_bytes", len(raw),
			)
			return "", fmt.Errorf("decode completion response: %w", err)
		}
		if len(cc.Choices) == 0 {
			c.logger.Error("llm.summarize.no_choices", "req_id", rid, "raw", string(raw))
			return "", fmt.Errorf("no choices in completion response")
		}

		summary = strings.TrimSpace(cc.Choices[0].Message.Content)
		truncated := cc.Choices[0].FinishReason == "length"
		endsProperly := summary != "" && strings.ContainsRune(".!?", rune(summary[len(summary)-1]))

		if truncated && !endsProperly && attempt == 0 {
			c.logger.Info("llm.summarize.truncated_retry",
				"req_id", rid, "next_max_tokens", budgets[1])
			continue
		}
		if truncated {
			c.logger.Warn("llm.summarize.possibly_truncated",
				"req_id", rid, "max_tokens", maxTokens)
		}
		break
	}

	c.logger.Info("llm.summarize.ok",
		"req_id", rid,
		"summary_len", len(summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
