// Package llm provides the bulletin's summarization boundary: a provider
// client that condenses notice text and a content-hash cache in front of it
// so identical passages never pay for a second completion.
package llm

import "context"

// Summarizer condenses a notice passage into bulletin-ready prose.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
