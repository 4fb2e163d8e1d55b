package explain

import "github.com/nitrazepam01/jmx-history/internal/llm"

// explanationSchema is the structured output contract for one explanation.
func explanationSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "answer-explanation",
		Description: "Tutoring explanation for a wrong multiple-choice answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"greeting": map[string]any{
					"type":        "string",
					"description": "Short personal greeting for the student",
				},
				"why_wrong": map[string]any{
					"type":        "string",
					"description": "Why the chosen answer is wrong and the misconception behind it",
				},
				"why_right": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is right",
				},
				"memory_tip": map[string]any{
					"type":        "string",
					"description": "The simplest way to remember this point",
				},
				"encouragement": map[string]any{
					"type":        "string",
					"description": "One short line of encouragement",
				},
			},
			"required":             []any{"greeting", "why_wrong", "why_right", "memory_tip", "encouragement"},
			"additionalProperties": false,
		},
	}
}
