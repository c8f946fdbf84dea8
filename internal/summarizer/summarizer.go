package summarizer

import "context"

// Summarizer produces a summary for extracted document text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
