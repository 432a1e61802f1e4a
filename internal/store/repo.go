package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full engine state at a point in time. The
// scheduler and the behavior tracker each own one section.
type SnapshotData struct {
	Version  int                   `json:"version"`
	SRS      *SRSSnapshotData      `json:"srs,omitempty"`
	Behavior *BehaviorSnapshotData `json:"behavior,omitempty"`
}

// SRSSnapshotData holds every student's review deck and mastery state.
type SRSSnapshotData struct {
	Students map[string]*StudentDeckData `json:"students"`
}

// StudentDeckData is one student's deck. TopicOrder and ItemOrder
// preserve insertion order, which the scheduler uses for deterministic
// listing and tie-breaks.
type StudentDeckData struct {
	TopicOrder []string                     `json:"topic_order"`
	Topics     map[string]*TopicMasteryData `json:"topics"`
	ItemOrder  []string                     `json:"item_order"`
}

// TopicMasteryData is the persisted form of a topic's mastery estimate.
// Timestamps are RFC3339 strings; nil means never practiced.
type TopicMasteryData struct {
	StudentID       string            `json:"student_id"`
	Topic           string            `json:"topic"`
	MasteryScore    float64           `json:"mastery_score"`
	Confidence      float64           `json:"confidence"`
	Attempts        int               `json:"attempts"`
	Correct         int               `json:"correct"`
	Streak          int               `json:"streak"`
	Items           []*ReviewItemData `json:"items"`
	LastPracticedAt *string           `json:"last_practiced_at,omitempty"`
}

// ReviewItemData is the persisted form of a review item.
type ReviewItemData struct {
	ID              string   `json:"id"`
	Topic           string   `json:"topic"`
	Subtopic        string   `json:"subtopic,omitempty"`
	Difficulty      float64  `json:"difficulty"`
	ContentSource   string   `json:"content_source,omitempty"`
	QuestionText    string   `json:"question_text"`
	CorrectAnswer   string   `json:"correct_answer"`
	Distractors     []string `json:"distractors,omitempty"`
	EaseFactor      float64  `json:"ease_factor"`
	IntervalDays    float64  `json:"interval_days"`
	Repetitions     int      `json:"repetitions"`
	LastReviewedAt  *string  `json:"last_reviewed_at,omitempty"`
	NextReviewAt    *string  `json:"next_review_at,omitempty"`
	TotalReviews    int      `json:"total_reviews"`
	CorrectCount    int      `json:"correct_count"`
	AvgResponseTime float64  `json:"avg_response_time"`
}

// BehaviorSnapshotData holds every student's long-term behavioral profile.
// Live sessions are ephemeral and never persisted.
type BehaviorSnapshotData struct {
	Profiles map[string]*BehaviorProfileData `json:"profiles"`
}

// BehaviorProfileData is the persisted form of a behavioral profile.
type BehaviorProfileData struct {
	StudentID        string             `json:"student_id"`
	TotalSessions    int                `json:"total_sessions"`
	TotalHintsUsed   int                `json:"total_hints_used"`
	AvgSessionLength float64            `json:"avg_session_length"`
	StruggleTopics   map[string]int     `json:"struggle_topics"`
	SignalHistory    []SignalRecordData `json:"signal_history,omitempty"`
	HintPreference   float64            `json:"hint_preference"`
	Persistence      float64            `json:"persistence"`
	HelpSeeking      float64            `json:"help_seeking"`
}

// SignalRecordData is one persisted struggle-signal occurrence.
type SignalRecordData struct {
	Timestamp string `json:"timestamp"`
	Signal    string `json:"signal"`
	Topic     string `json:"topic"`
}

// Snapshot is a point-in-time capture of engine state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages engine state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ReviewEventData captures one graded review and the resulting schedule.
type ReviewEventData struct {
	StudentID        string
	ItemID           string
	Topic            string
	Outcome          string
	ResponseTimeSecs float64
	IntervalDays     float64
	EaseFactor       float64
	Repetitions      int
	MasteryScore     float64
}

// SessionEventData captures a tutoring session boundary. Start events
// carry only the identifiers; end events carry the full aggregates.
type SessionEventData struct {
	SessionID            string
	StudentID            string
	Topic                string
	Action               string // "start" or "end"
	HintRequests         int
	QuestionsAsked       int
	CopyPasteCount       int
	DurationSecs         int
	Signals              []string
	InterventionOffered  bool
	InterventionAccepted bool
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event row.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendReviewEvent records a graded review.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
}
