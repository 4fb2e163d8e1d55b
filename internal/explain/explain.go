// Package explain turns a wrong answer into a short tutoring explanation.
//
// The generator never returns an error: any failure along the way (no
// provider configured, auth, network, malformed output) becomes a
// human-readable placeholder so the quiz always has something to show.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nitrazepam01/jmx-history/internal/llm"
)

// maxExplanationTokens is the generation-length budget for one explanation.
const maxExplanationTokens = 400

// Input carries everything the tutor needs to explain one miss.
type Input struct {
	Question      string
	UserChoice    string
	CorrectChoice string
}

// Explanation is the structured tutoring response.
type Explanation struct {
	Greeting      string `json:"greeting"`
	WhyWrong      string `json:"why_wrong"`
	WhyRight      string `json:"why_right"`
	MemoryTip     string `json:"memory_tip"`
	Encouragement string `json:"encouragement"`
}

// Generator produces explanations through an LLM provider.
type Generator struct {
	provider    llm.Provider
	studentName string
}

// NewGenerator creates a Generator. provider may be nil, in which case
// every Explain call yields the not-configured placeholder.
func NewGenerator(provider llm.Provider, studentName string) *Generator {
	return &Generator{provider: provider, studentName: studentName}
}

// Explain asks the provider for a tutoring explanation and renders it for
// display. It is synchronous, single-shot, and infallible by contract.
func (g *Generator) Explain(ctx context.Context, in Input) string {
	if g.provider == nil {
		return "AI explanation is not configured. Set an LLM API key to get explanations for wrong answers."
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(in, g.studentName)},
		},
		Schema:    explanationSchema(),
		MaxTokens: maxExplanationTokens,
	})
	if err != nil {
		return fmt.Sprintf("AI explanation is unavailable right now: %v", err)
	}

	var expl Explanation
	if err := json.Unmarshal(resp.Content, &expl); err != nil {
		return fmt.Sprintf("AI explanation is unavailable right now: %v", err)
	}

	return Render(expl)
}

// Render formats a structured explanation into the display text shown in
// the explanation panel.
func Render(e Explanation) string {
	var b strings.Builder

	if e.Greeting != "" {
		b.WriteString(e.Greeting)
		b.WriteString("\n\n")
	}
	if e.WhyWrong != "" {
		b.WriteString("Why that answer misses: ")
		b.WriteString(e.WhyWrong)
		b.WriteString("\n\n")
	}
	if e.WhyRight != "" {
		b.WriteString("Why the correct answer works: ")
		b.WriteString(e.WhyRight)
		b.WriteString("\n\n")
	}
	if e.MemoryTip != "" {
		b.WriteString("How to remember it: ")
		b.WriteString(e.MemoryTip)
		b.WriteString("\n\n")
	}
	if e.Encouragement != "" {
		b.WriteString(e.Encouragement)
	}

	return strings.TrimRight(b.String(), "\n")
}
