package summarizer

import "fmt"

// DefaultInstruction is used when summary.prompt is not configured.
const DefaultInstruction = `You are a summarization model. Condense the passage below, which is part of a speech transcript.
Write plain prose without headings, bullet points or preamble, and do not add information that is not in the passage.`

const promptTemplate = `%s
Use between %d and %d words.

Passage:
---
%s
---`

// BuildPrompt renders the instruction, length bounds and chunk into one user prompt.
func BuildPrompt(instruction, chunk string, b Bounds) string {
	if instruction == "" {
		instruction = DefaultInstruction
	}
	return fmt.Sprintf(promptTemplate, instruction, b.MinLength, b.MaxLength, chunk)
}

// maxTokens caps generation at roughly twice the word bound.
func maxTokens(b Bounds) int {
	return b.MaxLength * 2
}
