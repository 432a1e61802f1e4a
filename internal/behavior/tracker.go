package behavior

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/mkale/studyloop/internal/store"
)

// Trigger thresholds for struggle signals and intervention policy.
const (
	HintThreshold        = 3   // hint requests before multiple_hints
	ErrorRepeatThreshold = 2   // repeats of one error kind before repeated_errors
	CopyPasteThreshold   = 5   // copy/paste events before copy_paste
	RapidQuestionCount   = 5   // questions within the window before rapid_questions
	RapidQuestionWindow  = 5 * time.Minute
	DwellThreshold       = 10 * time.Minute // elapsed time before long_dwell

	// InterventionMinSignals is the number of distinct signals required
	// before an intervention is offered.
	InterventionMinSignals = 2

	// SignalHistoryCap bounds a profile's long-term signal history.
	SignalHistoryCap = 50

	// TraitSmoothing is the exponential smoothing rate applied to the
	// profile's learning-style traits at session end.
	TraitSmoothing = 0.2
)

// SuggestedAction is the fixed action attached to every intervention offer.
const SuggestedAction = "Take a quick 2-question concept check to identify gaps"

// Clock supplies the current time, injected for deterministic tests.
type Clock func() time.Time

// Tracker observes live help-session events, raises struggle signals,
// applies the intervention policy, and folds session outcomes into each
// student's long-term behavioral profile.
//
// Event logging against an unknown session is a silent no-op: tutoring
// telemetry is best-effort and must never interrupt the help flow.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*Session
	profiles map[string]*Profile

	now       Clock
	eventRepo store.EventRepo
}

// NewTracker creates a tracker, restoring profiles from the snapshot if
// one is provided.
func NewTracker(snap *store.SnapshotData, clock Clock, eventRepo store.EventRepo) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	t := &Tracker{
		sessions:  make(map[string]*Session),
		profiles:  make(map[string]*Profile),
		now:       clock,
		eventRepo: eventRepo,
	}
	if snap != nil && snap.Behavior != nil {
		t.loadFromSnapshot(snap.Behavior)
	}
	return t
}

// profile returns the student's profile, creating it lazily.
// Caller must hold t.mu.
func (t *Tracker) profile(studentID string) *Profile {
	if p, ok := t.profiles[studentID]; ok {
		return p
	}
	p := newProfile(studentID)
	t.profiles[studentID] = p
	return p
}

// StartSession begins tracking a session. If the student already has an
// active session, that session is returned instead of starting another.
func (t *Tracker) StartSession(ctx context.Context, sessionID, studentID, topic string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range t.sessions {
		if s.StudentID == studentID {
			return s
		}
	}

	s := newSession(sessionID, studentID, topic, t.now())
	t.sessions[sessionID] = s
	t.profile(studentID)

	if t.eventRepo != nil {
		_ = t.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: sessionID,
			StudentID: studentID,
			Topic:     topic,
			Action:    "start",
		})
	}
	return s
}

// raise records a signal on the session and in the student's long-term
// history. Idempotent per signal type within a session.
func (t *Tracker) raise(s *Session, sig Signal) {
	if s.hasSignal(sig) {
		return
	}
	s.Signals = append(s.Signals, sig)

	p := t.profile(s.StudentID)
	p.SignalHistory.Append(SignalRecord{At: t.now(), Signal: sig, Topic: s.Topic})
}

// LogHintRequest records a hint request and checks for excessive usage.
func (t *Tracker) LogHintRequest(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return
	}
	s.HintRequests++

	if s.HintRequests >= HintThreshold {
		t.raise(s, SignalMultipleHints)
	}
}

// LogQuestion records a question, checking for rapid-fire questioning and
// low-confidence language.
func (t *Tracker) LogQuestion(sessionID, question string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return
	}
	s.QuestionsAsked++

	if t.now().Sub(s.StartTime) < RapidQuestionWindow && s.QuestionsAsked >= RapidQuestionCount {
		t.raise(s, SignalRapidQuestions)
	}

	if hasLowConfidence(question) {
		t.raise(s, SignalLowConfidence)
	}
}

// LogError records an error occurrence and checks for repeats of the same
// error kind.
func (t *Tracker) LogError(sessionID, errorKind string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return
	}
	s.ErrorRepeats[errorKind]++

	if s.ErrorRepeats[errorKind] >= ErrorRepeatThreshold {
		t.raise(s, SignalRepeatedErrors)
	}
}

// LogCopyPaste records copy/paste activity.
func (t *Tracker) LogCopyPaste(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return
	}
	s.CopyPasteCount++

	if s.CopyPasteCount >= CopyPasteThreshold {
		t.raise(s, SignalCopyPaste)
	}
}

// UpdateTimeOnTask refreshes the session's elapsed time and checks for a
// long dwell with minimal interaction.
func (t *Tracker) UpdateTimeOnTask(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return
	}
	elapsed := t.now().Sub(s.StartTime)
	s.TimeOnTaskSeconds = elapsed.Seconds()

	if elapsed >= DwellThreshold && (s.QuestionsAsked == 0 || s.HintRequests == 0) {
		t.raise(s, SignalLongDwell)
	}
}

// Intervention is an offer to interrupt the help flow with a short
// concept check.
type Intervention struct {
	Type            string
	Reason          string
	Signals         []Signal
	SuggestedAction string
}

// ShouldOfferIntervention returns an intervention offer, or nil when no
// offer should be made: unknown session, already offered, or fewer than
// two distinct signals raised. Marks the session as offered, so at most
// one offer is made per session.
func (t *Tracker) ShouldOfferIntervention(sessionID string) *Intervention {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return nil
	}
	if s.InterventionOffered {
		return nil
	}
	if len(s.Signals) < InterventionMinSignals {
		return nil
	}

	s.InterventionOffered = true

	return &Intervention{
		Type:            "concept_check",
		Reason:          ExplainSignals(s.Signals),
		Signals:         append([]Signal(nil), s.Signals...),
		SuggestedAction: SuggestedAction,
	}
}

// RecordInterventionResponse records whether the student accepted an
// offered intervention. No-op for unknown sessions.
func (t *Tracker) RecordInterventionResponse(sessionID string, accepted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[sessionID]; ok {
		s.InterventionAccepted = accepted
	}
}

// SessionSummary reports the outcome of an ended session and the
// student's updated trait values.
type SessionSummary struct {
	SessionID            string
	DurationMinutes      float64
	HintsUsed            int
	QuestionsAsked       int
	Signals              []Signal
	InterventionOffered  bool
	InterventionAccepted bool

	HintPreference float64
	Persistence    float64
	HelpSeeking    float64
}

// EndSession folds the session's aggregates into the student's profile
// and discards the session. Returns nil for unknown sessions.
func (t *Tracker) EndSession(ctx context.Context, sessionID string) *SessionSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return nil
	}
	p := t.profile(s.StudentID)

	p.TotalSessions++
	p.TotalHintsUsed += s.HintRequests

	sessionMinutes := s.TimeOnTaskSeconds / 60
	p.AvgSessionLength = (p.AvgSessionLength*float64(p.TotalSessions-1) + sessionMinutes) /
		float64(p.TotalSessions)

	if len(s.Signals) > 0 {
		p.StruggleTopics[s.Topic] += len(s.Signals)
	}

	// Smooth the learning-style traits toward this session's signals.
	hintsPerQuestion := math.Min(float64(s.HintRequests)/math.Max(float64(s.QuestionsAsked), 1), 1.0)
	p.HintPreference = (1-TraitSmoothing)*p.HintPreference + TraitSmoothing*hintsPerQuestion

	persistence := math.Min(s.TimeOnTaskSeconds/600, 1.0) // 10 minutes = max persistence signal
	p.Persistence = (1-TraitSmoothing)*p.Persistence + TraitSmoothing*persistence

	helpSeeking := math.Min(float64(s.QuestionsAsked)/5, 1.0)
	p.HelpSeeking = (1-TraitSmoothing)*p.HelpSeeking + TraitSmoothing*helpSeeking

	summary := &SessionSummary{
		SessionID:            sessionID,
		DurationMinutes:      sessionMinutes,
		HintsUsed:            s.HintRequests,
		QuestionsAsked:       s.QuestionsAsked,
		Signals:              append([]Signal(nil), s.Signals...),
		InterventionOffered:  s.InterventionOffered,
		InterventionAccepted: s.InterventionAccepted,
		HintPreference:       p.HintPreference,
		Persistence:          p.Persistence,
		HelpSeeking:          p.HelpSeeking,
	}

	if t.eventRepo != nil {
		signals := make([]string, len(s.Signals))
		for i, sig := range s.Signals {
			signals[i] = string(sig)
		}
		_ = t.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:            sessionID,
			StudentID:            s.StudentID,
			Topic:                s.Topic,
			Action:               "end",
			HintRequests:         s.HintRequests,
			QuestionsAsked:       s.QuestionsAsked,
			CopyPasteCount:       s.CopyPasteCount,
			DurationSecs:         int(s.TimeOnTaskSeconds),
			Signals:              signals,
			InterventionOffered:  s.InterventionOffered,
			InterventionAccepted: s.InterventionAccepted,
		})
	}

	delete(t.sessions, sessionID)
	return summary
}

// TopicStruggle pairs a topic with its cumulative struggle count.
type TopicStruggle struct {
	Topic string
	Count int
}

// StruggleTopics returns the topics where the student has struggled,
// most frequent first. Ties are ordered by topic name for stable output.
func (t *Tracker) StruggleTopics(studentID string) []TopicStruggle {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.profiles[studentID]
	if !ok {
		return nil
	}

	struggles := make([]TopicStruggle, 0, len(p.StruggleTopics))
	for topic, count := range p.StruggleTopics {
		struggles = append(struggles, TopicStruggle{Topic: topic, Count: count})
	}
	sort.Slice(struggles, func(i, j int) bool {
		if struggles[i].Count != struggles[j].Count {
			return struggles[i].Count > struggles[j].Count
		}
		return struggles[i].Topic < struggles[j].Topic
	})
	return struggles
}

// GetProfile returns the student's behavioral profile, or nil if the
// student has never had a session.
func (t *Tracker) GetProfile(studentID string) *Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profiles[studentID]
}

// ActiveSession returns the session with the given id, or nil.
func (t *Tracker) ActiveSession(sessionID string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessions[sessionID]
}
