package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionResponse(content, finishReason string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{
				"message":       map[string]any{"content": content},
				"finish_reason": finishReason,
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(completionResponse("A concise summary.", "stop"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	got, err := c.Summarize(context.Background(), "A long notice passage.")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "A concise summary." {
		t.Errorf("summary = %q", got)
	}

	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	content := msgs[0].(map[string]any)["content"].(string)
	if !strings.Contains(content, "A long notice passage.") {
		t.Error("prompt does not carry the input text")
	}
	if !strings.Contains(content, "Never use introductory phrases") {
		t.Error("prompt lost its instructions")
	}
}

func TestSummarizeRetriesOnTruncation(t *testing.T) {
	var budgets []float64
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		budgets = append(budgets, body["max_tokens"].(float64))
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(completionResponse("cut off mid", "length"))
			return
		}
		json.NewEncoder(w).Encode(completionResponse("A finished summary.", "stop"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, MaxTokens: 100}, nil)
	got, err := c.Summarize(context.Background(), "text")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "A finished summary." {
		t.Errorf("summary = %q", got)
	}
	if len(budgets) != 2 || budgets[0] != 100 || budgets[1] != 140 {
		t.Errorf("token budgets = %v, want [100 140]", budgets)
	}
}

func TestSummarizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	if _, err := c.Summarize(context.Background(), "text"); err == nil {
		t.Fatal("expected an error on a 429 response")
	}
}
