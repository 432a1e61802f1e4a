package behavior

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/mkale/studyloop/internal/store"
)

// mockEventRepo records appended session events.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func fixedClock(at *time.Time) Clock {
	return func() time.Time { return *at }
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func startTestSession(t *Tracker) *Session {
	return t.StartSession(context.Background(), "sess-1", "alice", "Pointers")
}

func TestStartSession_ReturnsExistingForStudent(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	first := tr.StartSession(context.Background(), "sess-1", "alice", "Pointers")
	second := tr.StartSession(context.Background(), "sess-2", "alice", "Arrays")

	if second != first {
		t.Error("expected the existing session to be returned")
	}
	if tr.ActiveSession("sess-2") != nil {
		t.Error("second session should not have been registered")
	}
}

func TestLogHintRequest_RaisesAtThreshold(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	tr.LogHintRequest("sess-1")
	tr.LogHintRequest("sess-1")
	if len(s.Signals) != 0 {
		t.Fatalf("expected no signals below threshold, got %v", s.Signals)
	}

	tr.LogHintRequest("sess-1")
	if len(s.Signals) != 1 || s.Signals[0] != SignalMultipleHints {
		t.Errorf("signals = %v, want [multiple_hints]", s.Signals)
	}

	// Further hints do not duplicate the signal.
	tr.LogHintRequest("sess-1")
	if len(s.Signals) != 1 {
		t.Errorf("signals = %v, want a single multiple_hints", s.Signals)
	}
}

func TestLogError_RaisesOnRepeatOfSameKind(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	tr.LogError("sess-1", "segfault")
	tr.LogError("sess-1", "off-by-one")
	if len(s.Signals) != 0 {
		t.Fatalf("distinct error kinds should not raise, got %v", s.Signals)
	}

	tr.LogError("sess-1", "segfault")
	if len(s.Signals) != 1 || s.Signals[0] != SignalRepeatedErrors {
		t.Errorf("signals = %v, want [repeated_errors]", s.Signals)
	}
}

func TestLogCopyPaste_RaisesAtThreshold(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	for i := 0; i < 4; i++ {
		tr.LogCopyPaste("sess-1")
	}
	if len(s.Signals) != 0 {
		t.Fatalf("expected no signals at 4 pastes, got %v", s.Signals)
	}

	tr.LogCopyPaste("sess-1")
	if len(s.Signals) != 1 || s.Signals[0] != SignalCopyPaste {
		t.Errorf("signals = %v, want [copy_paste]", s.Signals)
	}
}

func TestLogQuestion_RapidQuestionsWithinWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	now = now.Add(2 * time.Minute)
	for i := 0; i < 5; i++ {
		tr.LogQuestion("sess-1", "how does this work?")
	}

	if !s.hasSignal(SignalRapidQuestions) {
		t.Errorf("signals = %v, want rapid_questions", s.Signals)
	}
}

func TestLogQuestion_NoRapidSignalOutsideWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	now = now.Add(6 * time.Minute)
	for i := 0; i < 5; i++ {
		tr.LogQuestion("sess-1", "how does this work?")
	}

	if s.hasSignal(SignalRapidQuestions) {
		t.Errorf("rapid_questions should not fire outside the window: %v", s.Signals)
	}
}

func TestLogQuestion_LowConfidencePhrases(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	tr.LogQuestion("sess-1", "what is a pointer?")
	if s.hasSignal(SignalLowConfidence) {
		t.Fatal("neutral question should not raise low_confidence")
	}

	tr.LogQuestion("sess-1", "I'm so CONFUSED by this")
	if !s.hasSignal(SignalLowConfidence) {
		t.Errorf("signals = %v, want low_confidence (case-insensitive match)", s.Signals)
	}
}

func TestUpdateTimeOnTask_LongDwellNeedsMinimalInteraction(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	s := startTestSession(tr)

	// Interacting on both channels suppresses the dwell signal.
	tr.LogQuestion("sess-1", "what is a pointer?")
	tr.LogHintRequest("sess-1")

	now = now.Add(15 * time.Minute)
	tr.UpdateTimeOnTask("sess-1")
	if s.hasSignal(SignalLongDwell) {
		t.Errorf("long_dwell should not fire with questions and hints: %v", s.Signals)
	}
	if !approx(s.TimeOnTaskSeconds, 15*60) {
		t.Errorf("TimeOnTaskSeconds = %v, want 900", s.TimeOnTaskSeconds)
	}

	// A silent session of the same length does raise it.
	tr2 := NewTracker(nil, fixedClock(&now), nil)
	s2 := tr2.StartSession(context.Background(), "sess-2", "bob", "Arrays")
	now = now.Add(10 * time.Minute)
	tr2.UpdateTimeOnTask("sess-2")
	if !s2.hasSignal(SignalLongDwell) {
		t.Errorf("signals = %v, want long_dwell", s2.Signals)
	}
}

func TestUnknownSession_EventsAreNoOps(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	// None of these should panic or create state.
	tr.LogHintRequest("ghost")
	tr.LogQuestion("ghost", "confused")
	tr.LogError("ghost", "segfault")
	tr.LogCopyPaste("ghost")
	tr.UpdateTimeOnTask("ghost")
	tr.RecordInterventionResponse("ghost", true)

	if tr.ShouldOfferIntervention("ghost") != nil {
		t.Error("unknown session should never get an offer")
	}
	if tr.EndSession(context.Background(), "ghost") != nil {
		t.Error("ending an unknown session should return nil")
	}
}

func TestShouldOfferIntervention_RequiresTwoSignalsAndOffersOnce(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)
	startTestSession(tr)

	// One signal is not enough.
	for i := 0; i < 3; i++ {
		tr.LogHintRequest("sess-1")
	}
	if tr.ShouldOfferIntervention("sess-1") != nil {
		t.Fatal("one signal should not trigger an offer")
	}

	tr.LogQuestion("sess-1", "i don't know where to start")

	offer := tr.ShouldOfferIntervention("sess-1")
	if offer == nil {
		t.Fatal("expected an intervention offer at two signals")
	}
	if offer.Type != "concept_check" {
		t.Errorf("Type = %q, want concept_check", offer.Type)
	}
	if offer.SuggestedAction != SuggestedAction {
		t.Errorf("SuggestedAction = %q", offer.SuggestedAction)
	}
	want := "You've requested several hints and You mentioned feeling confused"
	if offer.Reason != want {
		t.Errorf("Reason = %q, want %q", offer.Reason, want)
	}

	// At most one offer per session.
	if tr.ShouldOfferIntervention("sess-1") != nil {
		t.Error("second offer should be suppressed")
	}
}

func TestExplainSignals(t *testing.T) {
	tests := []struct {
		name    string
		signals []Signal
		want    string
	}{
		{"none", nil, ""},
		{"one", []Signal{SignalMultipleHints}, "You've requested several hints"},
		{"two", []Signal{SignalMultipleHints, SignalLowConfidence},
			"You've requested several hints and You mentioned feeling confused"},
		{"three", []Signal{SignalMultipleHints, SignalLowConfidence, SignalCopyPaste},
			"You've requested several hints, You mentioned feeling confused, and There's a lot of trial-and-error happening"},
		{"four capped at three", []Signal{SignalMultipleHints, SignalLowConfidence, SignalCopyPaste, SignalLongDwell},
			"You've requested several hints, You mentioned feeling confused, and There's a lot of trial-and-error happening"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExplainSignals(tt.signals); got != tt.want {
				t.Errorf("ExplainSignals() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEndSession_UpdatesProfile(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{}
	tr := NewTracker(nil, fixedClock(&now), repo)
	startTestSession(tr)

	// 4 hints, 2 questions, 5 minutes on task.
	for i := 0; i < 4; i++ {
		tr.LogHintRequest("sess-1")
	}
	tr.LogQuestion("sess-1", "what is a pointer?")
	tr.LogQuestion("sess-1", "i don't understand dereferencing")
	now = now.Add(5 * time.Minute)
	tr.UpdateTimeOnTask("sess-1")

	summary := tr.EndSession(context.Background(), "sess-1")
	if summary == nil {
		t.Fatal("expected a session summary")
	}
	if !approx(summary.DurationMinutes, 5) {
		t.Errorf("DurationMinutes = %v, want 5", summary.DurationMinutes)
	}

	p := tr.GetProfile("alice")
	if p.TotalSessions != 1 || p.TotalHintsUsed != 4 {
		t.Errorf("sessions/hints = %d/%d, want 1/4", p.TotalSessions, p.TotalHintsUsed)
	}
	if !approx(p.AvgSessionLength, 5) {
		t.Errorf("AvgSessionLength = %v, want 5", p.AvgSessionLength)
	}

	// Traits start at 0.5 and are smoothed at rate 0.2.
	// hintsPerQuestion = min(4/2, 1) = 1       -> 0.4 + 0.2*1   = 0.6
	// persistence      = min(300/600, 1) = 0.5 -> 0.4 + 0.2*0.5 = 0.5
	// helpSeeking      = min(2/5, 1) = 0.4     -> 0.4 + 0.2*0.4 = 0.48
	if !approx(p.HintPreference, 0.6) {
		t.Errorf("HintPreference = %v, want 0.6", p.HintPreference)
	}
	if !approx(p.Persistence, 0.5) {
		t.Errorf("Persistence = %v, want 0.5", p.Persistence)
	}
	if !approx(p.HelpSeeking, 0.48) {
		t.Errorf("HelpSeeking = %v, want 0.48", p.HelpSeeking)
	}

	// Both signals land in the struggle tally for the topic.
	if p.StruggleTopics["Pointers"] != 2 {
		t.Errorf("StruggleTopics[Pointers] = %d, want 2", p.StruggleTopics["Pointers"])
	}

	// Session is gone; ending twice returns nil.
	if tr.ActiveSession("sess-1") != nil {
		t.Error("session should be discarded after end")
	}
	if tr.EndSession(context.Background(), "sess-1") != nil {
		t.Error("second end should return nil")
	}

	// Start + end events were appended.
	if len(repo.sessionEvents) != 2 {
		t.Fatalf("expected 2 session events, got %d", len(repo.sessionEvents))
	}
	end := repo.sessionEvents[1]
	if end.Action != "end" || end.HintRequests != 4 || len(end.Signals) != 2 {
		t.Errorf("unexpected end event: %+v", end)
	}
}

func TestEndSession_AvgLengthIsRunningMean(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	tr.StartSession(context.Background(), "sess-1", "alice", "Pointers")
	now = now.Add(10 * time.Minute)
	tr.UpdateTimeOnTask("sess-1")
	tr.EndSession(context.Background(), "sess-1")

	tr.StartSession(context.Background(), "sess-2", "alice", "Arrays")
	now = now.Add(20 * time.Minute)
	tr.UpdateTimeOnTask("sess-2")
	tr.EndSession(context.Background(), "sess-2")

	p := tr.GetProfile("alice")
	if p.TotalSessions != 2 {
		t.Fatalf("TotalSessions = %d, want 2", p.TotalSessions)
	}
	if !approx(p.AvgSessionLength, 15) {
		t.Errorf("AvgSessionLength = %v, want 15", p.AvgSessionLength)
	}
}

func TestStruggleTopics_SortedByCountThenName(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	run := func(sessID, topic string, signals int) {
		tr.StartSession(context.Background(), sessID, "alice", topic)
		if signals >= 1 {
			for i := 0; i < 3; i++ {
				tr.LogHintRequest(sessID)
			}
		}
		if signals >= 2 {
			tr.LogQuestion(sessID, "i have no idea")
		}
		tr.EndSession(context.Background(), sessID)
	}

	run("s1", "Pointers", 1)
	run("s2", "Arrays", 2)
	run("s3", "Algorithms", 1)

	got := tr.StruggleTopics("alice")
	if len(got) != 3 {
		t.Fatalf("expected 3 struggle topics, got %d", len(got))
	}
	if got[0].Topic != "Arrays" || got[0].Count != 2 {
		t.Errorf("first = %+v, want Arrays with 2", got[0])
	}
	// Tie between Pointers and Algorithms breaks alphabetically.
	if got[1].Topic != "Algorithms" || got[2].Topic != "Pointers" {
		t.Errorf("tie order = %s, %s, want Algorithms, Pointers", got[1].Topic, got[2].Topic)
	}
}

func TestSnapshot_RoundTripsProfiles(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	tr.StartSession(context.Background(), "sess-1", "alice", "Pointers")
	for i := 0; i < 3; i++ {
		tr.LogHintRequest("sess-1")
	}
	tr.LogQuestion("sess-1", "i'm lost")
	now = now.Add(8 * time.Minute)
	tr.UpdateTimeOnTask("sess-1")
	tr.EndSession(context.Background(), "sess-1")

	snap := &store.SnapshotData{Behavior: tr.SnapshotData()}
	restored := NewTracker(snap, fixedClock(&now), nil)

	p := restored.GetProfile("alice")
	if p == nil {
		t.Fatal("expected alice's profile to survive the round trip")
	}
	if p.TotalSessions != 1 || p.TotalHintsUsed != 3 {
		t.Errorf("sessions/hints = %d/%d, want 1/3", p.TotalSessions, p.TotalHintsUsed)
	}
	if p.StruggleTopics["Pointers"] != 2 {
		t.Errorf("StruggleTopics[Pointers] = %d, want 2", p.StruggleTopics["Pointers"])
	}
	if p.SignalHistory.Len() != 2 {
		t.Errorf("SignalHistory.Len() = %d, want 2", p.SignalHistory.Len())
	}

	orig := tr.GetProfile("alice")
	if !approx(p.HintPreference, orig.HintPreference) {
		t.Errorf("HintPreference = %v, want %v", p.HintPreference, orig.HintPreference)
	}
}
