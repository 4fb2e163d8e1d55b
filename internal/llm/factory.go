package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration. There is no retry or
// logging middleware: explanation calls are single-shot and a failure
// degrades to a placeholder at the call site.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "deepseek":
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.DeepSeek.APIKey,
			Model:   cfg.DeepSeek.Model,
			BaseURL: deepseekBaseURL,
		})
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// NewProviderFromEnv builds a provider from JMX_* env vars, falling back
// to probing the standard key variables when no provider is selected
// explicitly.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil && hasKey(cfg) {
		return NewProvider(ctx, cfg)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key configured")
	}
	return NewProvider(ctx, discovered)
}

func hasKey(cfg Config) bool {
	switch cfg.Provider {
	case "deepseek":
		return cfg.DeepSeek.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "mock":
		return true
	}
	return false
}
