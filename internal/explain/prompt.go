package explain

import (
	"fmt"
	"strings"
)

const explainSystemPrompt = `You are a warm, encouraging tutor helping a student drill a fixed bank of multiple-choice questions. The student just answered one wrong. Explain in the same language the question is written in.`

func buildExplainUserMessage(in Input, studentName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %q\n", in.Question))
	b.WriteString(fmt.Sprintf("The student chose: %q\n", in.UserChoice))
	b.WriteString(fmt.Sprintf("The correct answer is: %q\n", in.CorrectChoice))

	b.WriteString(`
Instructions:
1. Explain why the chosen answer is wrong — name the common misconception behind it.
2. Explain why the correct answer is right.
3. Give the simplest way to remember this point.
`)

	if studentName != "" {
		b.WriteString(fmt.Sprintf("4. Open the greeting with \"Hello, %s\" and close with one short line of encouragement.\n", studentName))
	} else {
		b.WriteString("4. Open with a short friendly greeting and close with one short line of encouragement.\n")
	}

	b.WriteString("\nKeep every field concise. Warm, encouraging tone throughout.")

	return b.String()
}
