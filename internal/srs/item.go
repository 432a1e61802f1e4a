package srs

import "time"

// Ease factor bounds and defaults for the modified SM-2 schedule.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5

	// ResponseTimeSmoothing is the EMA weight for average response time.
	ResponseTimeSmoothing = 0.3
)

// ReviewItem is a single fact or question to be rehearsed. It carries both
// the content payload (from the content source) and its scheduling state.
type ReviewItem struct {
	ID            string   `json:"id"`
	Topic         string   `json:"topic"`
	Subtopic      string   `json:"subtopic"`
	Difficulty    float64  `json:"difficulty"` // static estimate, 0.0 (easy) to 1.0 (hard)
	ContentSource string   `json:"content_source"`
	QuestionText  string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	Distractors   []string `json:"distractors"`

	// Scheduling state.
	EaseFactor     float64    `json:"ease_factor"`   // bounded [1.3, 2.5]
	IntervalDays   float64    `json:"interval_days"` // days until next review
	Repetitions    int        `json:"repetitions"`   // consecutive successful reviews
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`

	// Cumulative performance counters. Never reset.
	TotalReviews    int     `json:"total_reviews"`
	CorrectCount    int     `json:"correct_count"`
	AvgResponseTime float64 `json:"avg_response_time"` // seconds, EMA
}

// NewReviewItem creates a ReviewItem with default scheduling state.
func NewReviewItem(id, topic, subtopic string, difficulty float64) *ReviewItem {
	return &ReviewItem{
		ID:           id,
		Topic:        topic,
		Subtopic:     subtopic,
		Difficulty:   difficulty,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 1.0,
	}
}

// IsDue reports whether the item is due for review at the given time.
func (it *ReviewItem) IsDue(now time.Time) bool {
	return it.NextReviewAt != nil && !it.NextReviewAt.After(now)
}

// OverdueHours returns how many hours past due the item is. Returns 0 if
// the item is not yet due or has never been scheduled.
func (it *ReviewItem) OverdueHours(now time.Time) float64 {
	if !it.IsDue(now) {
		return 0
	}
	return now.Sub(*it.NextReviewAt).Hours()
}

// TopicMastery aggregates a student's performance on one topic and owns the
// review items belonging to it.
type TopicMastery struct {
	StudentID string `json:"student_id"`
	Topic     string `json:"topic"`

	// MasteryScore starts at 0.5 (unknown) and is recomputed after every
	// graded review. Confidence reflects sample size, not skill.
	MasteryScore float64 `json:"mastery_score"` // [0, 1]
	Confidence   float64 `json:"confidence"`    // [0, 1]

	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
	Streak   int `json:"streak"` // current correct streak

	Items []*ReviewItem `json:"items"`

	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
}

func newTopicMastery(studentID, topic string) *TopicMastery {
	return &TopicMastery{
		StudentID:    studentID,
		Topic:        topic,
		MasteryScore: 0.5,
		Confidence:   0.1,
		Items:        make([]*ReviewItem, 0),
	}
}

// Accuracy returns the correct/attempts ratio, or 0 with no attempts.
func (tm *TopicMastery) Accuracy() float64 {
	if tm.Attempts == 0 {
		return 0
	}
	return float64(tm.Correct) / float64(tm.Attempts)
}
