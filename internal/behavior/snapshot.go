package behavior

import (
	"time"

	"github.com/mkale/studyloop/internal/store"
)

// Sessions are ephemeral and never persisted; only long-term profiles
// survive a restart.

func (t *Tracker) loadFromSnapshot(data *store.BehaviorSnapshotData) {
	if data == nil || data.Profiles == nil {
		return
	}
	for studentID, pd := range data.Profiles {
		p := newProfile(studentID)
		p.TotalSessions = pd.TotalSessions
		p.TotalHintsUsed = pd.TotalHintsUsed
		p.AvgSessionLength = pd.AvgSessionLength
		p.HintPreference = pd.HintPreference
		p.Persistence = pd.Persistence
		p.HelpSeeking = pd.HelpSeeking
		for topic, count := range pd.StruggleTopics {
			p.StruggleTopics[topic] = count
		}
		for _, rec := range pd.SignalHistory {
			at, err := time.Parse(time.RFC3339, rec.Timestamp)
			if err != nil {
				continue
			}
			p.SignalHistory.Append(SignalRecord{
				At:     at,
				Signal: Signal(rec.Signal),
				Topic:  rec.Topic,
			})
		}
		t.profiles[studentID] = p
	}
}

// SnapshotData exports the long-term profiles for persistence.
func (t *Tracker) SnapshotData() *store.BehaviorSnapshotData {
	t.mu.Lock()
	defer t.mu.Unlock()

	data := &store.BehaviorSnapshotData{
		Profiles: make(map[string]*store.BehaviorProfileData, len(t.profiles)),
	}
	for studentID, p := range t.profiles {
		pd := &store.BehaviorProfileData{
			StudentID:        studentID,
			TotalSessions:    p.TotalSessions,
			TotalHintsUsed:   p.TotalHintsUsed,
			AvgSessionLength: p.AvgSessionLength,
			StruggleTopics:   make(map[string]int, len(p.StruggleTopics)),
			HintPreference:   p.HintPreference,
			Persistence:      p.Persistence,
			HelpSeeking:      p.HelpSeeking,
		}
		for topic, count := range p.StruggleTopics {
			pd.StruggleTopics[topic] = count
		}
		for _, rec := range p.SignalHistory.All() {
			pd.SignalHistory = append(pd.SignalHistory, store.SignalRecordData{
				Timestamp: rec.At.Format(time.RFC3339),
				Signal:    string(rec.Signal),
				Topic:     rec.Topic,
			})
		}
		data.Profiles[studentID] = pd
	}
	return data
}
