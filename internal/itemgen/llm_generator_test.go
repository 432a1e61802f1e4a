package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mkale/studyloop/internal/llm"
)

func validBatch() json.RawMessage {
	return json.RawMessage(`{
		"items": [
			{
				"question_text": "What does malloc return on failure?",
				"correct_answer": "NULL",
				"distractors": ["0xFFFFFFFF", "An uninitialized pointer", "It aborts the program"],
				"difficulty": 0.3,
				"subtopic": "dynamic allocation",
				"source_citation": "Lecture 4, slide 12"
			},
			{
				"question_text": "Which header declares malloc?",
				"correct_answer": "stdlib.h",
				"distractors": ["stdio.h", "string.h", "memory.h"],
				"difficulty": 0.2,
				"subtopic": "dynamic allocation",
				"source_citation": "Lecture 4, slide 3"
			}
		]
	}`)
}

func TestGenerate_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch()})
	gen := New(mock, DefaultConfig())

	items, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "Memory",
		Count: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].CorrectAnswer != "NULL" {
		t.Errorf("expected correct answer NULL, got %q", items[0].CorrectAnswer)
	}
	if len(items[0].Distractors) != 3 {
		t.Errorf("expected 3 distractors, got %d", len(items[0].Distractors))
	}
	if items[1].SourceCitation != "Lecture 4, slide 3" {
		t.Errorf("unexpected citation: %q", items[1].SourceCitation)
	}
}

func TestGenerate_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:          "Memory",
		Subtopic:       "pointers",
		SourceExcerpt:  "A pointer stores the address of another object.",
		Count:          2,
		AvoidQuestions: []string{"What is a pointer?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Topic: Memory", "Subtopic: pointers", "address of another object", "What is a pointer?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "review-item-batch" {
		t.Error("expected the review-item-batch schema on the request")
	}
}

func TestGenerate_StructuralRejection(t *testing.T) {
	bad := json.RawMessage(`{
		"items": [
			{
				"question_text": "Which header declares malloc?",
				"correct_answer": "stdlib.h",
				"distractors": ["stdio.h", "string.h"],
				"difficulty": 0.2,
				"subtopic": "dynamic allocation",
				"source_citation": ""
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "Memory", Count: 1})
	if err == nil {
		t.Fatal("expected validation error for 2 distractors")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", verr.Validator)
	}
}

func TestGenerate_EmptyBatchRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"items":[]}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "Memory", Count: 3})
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "Memory", Count: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestStructuralValidator(t *testing.T) {
	base := func() *Item {
		return &Item{
			QuestionText:  "What does free do with a NULL pointer?",
			CorrectAnswer: "Nothing",
			Distractors:   []string{"Crashes", "Undefined behavior", "Frees the heap"},
			Difficulty:    0.4,
			Subtopic:      "dynamic allocation",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Item)
		wantErr bool
	}{
		{"valid", func(*Item) {}, false},
		{"empty question", func(it *Item) { it.QuestionText = "" }, true},
		{"empty answer", func(it *Item) { it.CorrectAnswer = "" }, true},
		{"too few distractors", func(it *Item) { it.Distractors = it.Distractors[:2] }, true},
		{"duplicate option", func(it *Item) { it.Distractors[0] = "Nothing" }, true},
		{"empty distractor", func(it *Item) { it.Distractors[1] = " " }, true},
		{"difficulty out of range", func(it *Item) { it.Difficulty = 1.5 }, true},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := base()
			tt.mutate(it)
			err := v.Validate(it, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToReviewItem(t *testing.T) {
	it := &Item{
		QuestionText:   "What does malloc return on failure?",
		CorrectAnswer:  "NULL",
		Distractors:    []string{"a", "b", "c"},
		Difficulty:     0.3,
		Subtopic:       "dynamic allocation",
		SourceCitation: "Lecture 4",
	}

	r := it.ToReviewItem("Memory")
	if r.ID == "" {
		t.Fatal("expected a generated id")
	}
	if r.Topic != "Memory" || r.Subtopic != "dynamic allocation" {
		t.Errorf("unexpected topic/subtopic: %q/%q", r.Topic, r.Subtopic)
	}
	if r.QuestionText != it.QuestionText || r.CorrectAnswer != "NULL" {
		t.Error("question content not carried over")
	}
	if r.TotalReviews != 0 || r.Repetitions != 0 {
		t.Error("new item must start unreviewed")
	}
}
