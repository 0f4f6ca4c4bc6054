package completion

import (
	"fmt"

	"github.com/taskautomator/backend/internal/config"
)

// NewProvider returns a Provider for the configured completion backend. It
// keeps callers decoupled from concrete providers.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.CompletionProvider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.CompletionModel), nil
	case "ollama":
		return NewOllamaProvider(cfg.OllamaURL, cfg.CompletionModel), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.CompletionProvider)
	}
}
