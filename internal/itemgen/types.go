package itemgen

import (
	"github.com/google/uuid"

	"github.com/mkale/studyloop/internal/srs"
)

// Item is a generated multiple-choice review item, not yet scheduled.
type Item struct {
	// QuestionText is the prompt shown to the student. Plain text,
	// self-contained, answerable without the source material at hand.
	QuestionText string

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string

	// Distractors are exactly 3 plausible wrong options, reflecting
	// common misconceptions rather than random values.
	Distractors []string

	// Difficulty is the model's self-assessed difficulty in [0, 1].
	Difficulty float64

	// Subtopic narrows the topic, e.g. "pointer arithmetic" within "Memory".
	Subtopic string

	// SourceCitation points at where in the course material the answer
	// comes from, e.g. "Lecture 4, slide 12". Empty when no excerpt was
	// provided.
	SourceCitation string
}

// ToReviewItem converts a generated item into a schedulable review item
// for the given topic, assigning it a fresh id.
func (it *Item) ToReviewItem(topic string) *srs.ReviewItem {
	r := srs.NewReviewItem(uuid.NewString(), topic, it.Subtopic, it.Difficulty)
	r.QuestionText = it.QuestionText
	r.CorrectAnswer = it.CorrectAnswer
	r.Distractors = append([]string(nil), it.Distractors...)
	r.ContentSource = it.SourceCitation
	return r
}

// GenerateInput is everything the generator needs for one batch.
type GenerateInput struct {
	// Topic is the curriculum topic the items belong to.
	Topic string

	// Subtopic optionally narrows the request.
	Subtopic string

	// SourceExcerpt is course material to ground the items in. The
	// generator cites it and stays within its content when present.
	SourceExcerpt string

	// Count is how many items to generate in this batch.
	Count int

	// AvoidQuestions lists question texts already in the student's deck,
	// so the batch does not duplicate them.
	AvoidQuestions []string
}
