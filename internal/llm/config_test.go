package llm

import (
	"context"
	"testing"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"JMX_LLM_PROVIDER", "JMX_DEEPSEEK_API_KEY", "JMX_OPENAI_API_KEY",
		"JMX_ANTHROPIC_API_KEY", "JMX_GEMINI_API_KEY",
		"DEEPSEEK_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("JMX_LLM_PROVIDER", "openai")
	t.Setenv("JMX_OPENAI_API_KEY", "sk-test")
	t.Setenv("JMX_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("openai config not picked up: %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig_PrefersDeepSeek(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "deepseek" {
		t.Fatalf("expected deepseek to win discovery, got %q", cfg.Provider)
	}
	if cfg.DeepSeek.Model != "deepseek-chat" {
		t.Fatalf("expected default deepseek-chat model, got %q", cfg.DeepSeek.Model)
	}
}

func TestDiscoverConfig_NothingConfigured(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "delphi"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock provider, got %q", p.ModelID())
	}
}

func TestNewProviderFromEnv_NoKeys(t *testing.T) {
	clearKeyEnv(t)

	if _, err := NewProviderFromEnv(context.Background()); err == nil {
		t.Fatal("expected error with no API keys configured")
	}
}
