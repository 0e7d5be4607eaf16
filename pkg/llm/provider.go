package llm

import "context"

// Message is one turn of a provider-agnostic chat exchange.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

type Option func(*Options)

type Options struct {
	Model string // overrides the provider's configured model
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every model backend satisfies. Summarization
// only needs Generate; Chat carries multi-turn history for callers that do.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single user prompt and returns the reply text.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
