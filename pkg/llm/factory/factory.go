package factory

import (
	"fmt"

	"feedback-forms-be/pkg/llm"
	"feedback-forms-be/pkg/llm/ollama"
	"feedback-forms-be/pkg/llm/openai"
)

// ErrMissingCredential reports an absent provider credential. Callers map it
// to a plain 500 rather than crashing.
type ErrMissingCredential struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s not set on server (required for provider %q)", e.EnvVar, e.Provider)
}

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, &ErrMissingCredential{Provider: "openai", EnvVar: "OPENAI_API_KEY"}
		}
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1" // Default
		}
		return openai.NewOpenAIProvider(baseURL, apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
