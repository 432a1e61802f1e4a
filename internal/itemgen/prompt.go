package itemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a computer science course tutor writing multiple-choice review questions for an introductory programming course.

Rules:
- Generate the requested number of distinct questions for the given topic.
- Each question must be clear, self-contained, and answerable without looking anything up.
- Provide exactly one correct answer and exactly 3 distractors per question. Distractors should reflect common misconceptions, not random values.
- When source material is provided, base every question on it and cite where the answer comes from. Do not invent facts beyond the material.
- Rate each question's difficulty from 0.0 (recall of a definition) to 1.0 (multi-step reasoning).
- Use plain text. Code snippets are fine; keep them short.
- Do not repeat any question from the "already in the deck" list.`

// buildUserMessage assembles the batch request for the model.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	if input.Subtopic != "" {
		fmt.Fprintf(&b, "Subtopic: %s\n", input.Subtopic)
	}
	fmt.Fprintf(&b, "Questions to generate: %d\n", input.Count)

	if input.SourceExcerpt != "" {
		b.WriteString("\nSource material:\n")
		b.WriteString(input.SourceExcerpt)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready in the deck:\n")
	b.WriteString(buildAvoidList(input.AvoidQuestions, cfg.MaxAvoidQuestions))

	return b.String()
}

// buildAvoidList formats existing questions for the prompt, keeping only
// the most recent entries when the list exceeds the limit.
func buildAvoidList(questions []string, max int) string {
	if len(questions) == 0 {
		return "None"
	}

	if max > 0 && len(questions) > max {
		questions = questions[len(questions)-max:]
	}

	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
