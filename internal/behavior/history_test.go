package behavior

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestSignalLog_AppendBelowCapacity(t *testing.T) {
	l := NewSignalLog(5)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		l.Append(SignalRecord{At: base.Add(time.Duration(i) * time.Minute), Signal: SignalMultipleHints, Topic: fmt.Sprintf("t%d", i)})
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	all := l.All()
	if all[0].Topic != "t0" || all[2].Topic != "t2" {
		t.Errorf("unexpected order: %v", all)
	}
}

func TestSignalLog_EvictsOldestWhenFull(t *testing.T) {
	l := NewSignalLog(3)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		l.Append(SignalRecord{At: base.Add(time.Duration(i) * time.Minute), Signal: SignalCopyPaste, Topic: fmt.Sprintf("t%d", i)})
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	all := l.All()
	if all[0].Topic != "t2" || all[1].Topic != "t3" || all[2].Topic != "t4" {
		t.Errorf("unexpected survivors: %v", all)
	}
}

func TestSignalLog_ZeroCapacityIsUsable(t *testing.T) {
	l := NewSignalLog(0)
	l.Append(SignalRecord{Signal: SignalLongDwell, Topic: "a"})
	l.Append(SignalRecord{Signal: SignalLongDwell, Topic: "b"})

	if l.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", l.Cap())
	}
	if l.Len() != 1 || l.All()[0].Topic != "b" {
		t.Errorf("expected only the newest record, got %v", l.All())
	}
}

func TestTracker_SignalHistoryCappedAtFifty(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(nil, fixedClock(&now), nil)

	// Each session raises two distinct signals.
	for i := 0; i < 30; i++ {
		id := fmt.Sprintf("sess-%d", i)
		tr.StartSession(context.Background(), id, "alice", "Pointers")
		for j := 0; j < 3; j++ {
			tr.LogHintRequest(id)
		}
		tr.LogQuestion(id, "i'm confused")
		tr.EndSession(context.Background(), id)
	}

	p := tr.GetProfile("alice")
	if p.SignalHistory.Len() != SignalHistoryCap {
		t.Errorf("history length = %d, want %d", p.SignalHistory.Len(), SignalHistoryCap)
	}
}
