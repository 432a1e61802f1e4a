package itemgen

import "github.com/mkale/studyloop/internal/llm"

// BatchSchema defines the JSON schema for item generation responses.
var BatchSchema = &llm.Schema{
	Name:        "review-item-batch",
	Description: "A batch of multiple-choice review questions for spaced repetition",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question shown to the student, in plain text",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option",
						},
						"distractors": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 3 plausible wrong options reflecting common misconceptions",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "Self-assessed difficulty from 0.0 (recall) to 1.0 (multi-step reasoning)",
						},
						"subtopic": map[string]any{
							"type":        "string",
							"description": "A short label narrowing the topic, e.g. \"pointer arithmetic\"",
						},
						"source_citation": map[string]any{
							"type":        "string",
							"description": "Where in the provided material the answer comes from. Empty when no material was given.",
						},
					},
					"required":             []any{"question_text", "correct_answer", "distractors", "difficulty", "subtopic", "source_citation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
