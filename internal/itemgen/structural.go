package itemgen

import "strings"

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(it *Item, _ GenerateInput) *ValidationError {
	if it.QuestionText == "" {
		return v.fail("question_text is empty")
	}
	if len(it.QuestionText) > 500 {
		return v.fail("question_text exceeds 500 characters")
	}
	if it.CorrectAnswer == "" {
		return v.fail("correct_answer is empty")
	}
	if len(it.Distractors) != 3 {
		return v.fail("exactly 3 distractors are required")
	}
	seen := map[string]bool{strings.TrimSpace(it.CorrectAnswer): true}
	for _, d := range it.Distractors {
		d = strings.TrimSpace(d)
		if d == "" {
			return v.fail("distractor is empty")
		}
		if seen[d] {
			return v.fail("options must be distinct")
		}
		seen[d] = true
	}
	if it.Difficulty < 0 || it.Difficulty > 1 {
		return v.fail("difficulty must be between 0 and 1")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
