package behavior

import "time"

// Session tracks activity within one bounded window of tutoring
// interaction for a student and topic.
type Session struct {
	ID        string
	StudentID string
	Topic     string
	StartTime time.Time

	HintRequests      int
	QuestionsAsked    int
	TimeOnTaskSeconds float64
	CopyPasteCount    int
	ErrorRepeats      map[string]int

	// Signals holds the distinct signals raised so far, in the order they
	// were raised. A signal type appears at most once.
	Signals []Signal

	InterventionOffered  bool
	InterventionAccepted bool
}

func newSession(id, studentID, topic string, start time.Time) *Session {
	return &Session{
		ID:           id,
		StudentID:    studentID,
		Topic:        topic,
		StartTime:    start,
		ErrorRepeats: make(map[string]int),
	}
}

// hasSignal reports whether the signal has already been raised this session.
func (s *Session) hasSignal(sig Signal) bool {
	for _, raised := range s.Signals {
		if raised == sig {
			return true
		}
	}
	return false
}

// Profile is a student's long-term behavioral record, updated once per
// session end via exponential smoothing.
type Profile struct {
	StudentID string

	TotalSessions     int
	TotalHintsUsed    int
	AvgSessionLength  float64 // minutes, running mean
	StruggleTopics    map[string]int
	SignalHistory     *SignalLog

	// Learning style traits in [0, 1], smoothed with rate 0.2.
	HintPreference float64 // 0 = avoids hints, 1 = relies on hints
	Persistence    float64 // how long they stick with problems
	HelpSeeking    float64 // tendency to ask questions vs struggle alone
}

func newProfile(studentID string) *Profile {
	return &Profile{
		StudentID:      studentID,
		StruggleTopics: make(map[string]int),
		SignalHistory:  NewSignalLog(SignalHistoryCap),
		HintPreference: 0.5,
		Persistence:    0.5,
		HelpSeeking:    0.5,
	}
}
