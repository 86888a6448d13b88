package generator

import "context"

// LLMClient abstracts the chat-completion backend so it can be swapped
// or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// LLMSettings carries the base configuration for concrete clients.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
