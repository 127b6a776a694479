package llm

import "context"

// Oracle is the completion service the extraction pipeline delegates to.
// Implementations send one prompt and return the raw completion text;
// every failure must carry a *diag.Diagnostic so the caller can classify
// it without string matching.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
