package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion endpoints. The quiz
// only ever makes single-turn calls, but the request shape keeps the
// conversation form so providers map onto their SDKs naturally.
type Provider interface {
	// Generate sends a prompt and returns the completion. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send.
type Request struct {
	// System sets the tutor persona and constraints.
	System string

	// Messages is the conversation. In this app: one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the generation length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero value means
	// deterministic.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON structure the LLM must produce.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI-compatible APIs). Kebab-case.
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the completion.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise raw text wrapped as a json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID, passing
// unknown names through so direct model IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
