package llm

import "context"

type Provider interface {
	// Complete sends one prompt and returns the full response text. Prompts
	// here always instruct the model to answer with a single JSON document.
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
