package itemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkale/studyloop/internal/llm"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// itemOutput mirrors one element of the schema's items array.
type itemOutput struct {
	QuestionText   string   `json:"question_text"`
	CorrectAnswer  string   `json:"correct_answer"`
	Distractors    []string `json:"distractors"`
	Difficulty     float64  `json:"difficulty"`
	Subtopic       string   `json:"subtopic"`
	SourceCitation string   `json:"source_citation"`
}

type batchOutput struct {
	Items []itemOutput `json:"items"`
}

// Generate produces a batch of review items for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]*Item, error) {
	ctx = llm.WithPurpose(ctx, "item-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Items) == 0 {
		return nil, fmt.Errorf("LLM returned an empty batch")
	}

	items := make([]*Item, 0, len(raw.Items))
	for _, out := range raw.Items {
		it := &Item{
			QuestionText:   out.QuestionText,
			CorrectAnswer:  out.CorrectAnswer,
			Distractors:    out.Distractors,
			Difficulty:     out.Difficulty,
			Subtopic:       out.Subtopic,
			SourceCitation: out.SourceCitation,
		}

		for _, v := range g.config.Validators {
			if verr := v.Validate(it, input); verr != nil {
				return nil, verr
			}
		}
		items = append(items, it)
	}

	return items, nil
}
