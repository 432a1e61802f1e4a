package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSnapshotRoundTripsDeckState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	reviewed := "2026-08-20T10:00:00Z"
	data := SnapshotData{
		Version: 1,
		SRS: &SRSSnapshotData{
			Students: map[string]*StudentDeckData{
				"alice": {
					TopicOrder: []string{"Memory"},
					ItemOrder:  []string{"item-1"},
					Topics: map[string]*TopicMasteryData{
						"Memory": {
							StudentID:    "alice",
							Topic:        "Memory",
							MasteryScore: 0.62,
							Confidence:   0.3,
							Attempts:     4,
							Correct:      3,
							Streak:       2,
							Items: []*ReviewItemData{
								{
									ID:             "item-1",
									Topic:          "Memory",
									QuestionText:   "What does malloc return on failure?",
									CorrectAnswer:  "NULL",
									EaseFactor:     2.5,
									IntervalDays:   6,
									Repetitions:    2,
									TotalReviews:   2,
									CorrectCount:   2,
									LastReviewedAt: &reviewed,
								},
							},
						},
					},
				},
			},
		},
		Behavior: &BehaviorSnapshotData{
			Profiles: map[string]*BehaviorProfileData{
				"alice": {
					StudentID:      "alice",
					TotalSessions:  3,
					StruggleTopics: map[string]int{"Memory": 2},
					HintPreference: 0.4,
					Persistence:    0.6,
					HelpSeeking:    0.5,
				},
			},
		},
	}

	if err := repo.Save(ctx, &Snapshot{Sequence: 1, Timestamp: time.Now().UTC(), Data: data}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	deck := snap.Data.SRS.Students["alice"]
	if deck == nil {
		t.Fatal("expected alice's deck in snapshot")
	}
	item := deck.Topics["Memory"].Items[0]
	if item.ID != "item-1" || item.Repetitions != 2 || item.LastReviewedAt == nil {
		t.Errorf("item state lost in round trip: %+v", item)
	}
	profile := snap.Data.Behavior.Profiles["alice"]
	if profile == nil || profile.StruggleTopics["Memory"] != 2 {
		t.Error("behavior profile lost in round trip")
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReviewEvent(ctx, ReviewEventData{
		StudentID:   "alice",
		ItemID:      "item-1",
		Topic:       "Memory",
		Outcome:     "good",
		EaseFactor:  2.5,
		Repetitions: 1,
	})
	if err != nil {
		t.Fatalf("append review event: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1",
		StudentID: "alice",
		Topic:     "Memory",
		Action:    "end",
		Signals:   []string{"multiple_hints"},
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "item-gen",
		InputTokens:  100,
		OutputTokens: 50,
		Success:      true,
		RequestBody:  "[user]\ngenerate",
		ResponseBody: `{"items":[]}`,
	})
	if err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 llm event, got %d", len(events))
	}
	if events[0].Purpose != "item-gen" || events[0].ResponseBody != `{"items":[]}` {
		t.Errorf("unexpected event: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if got == nil || got.InputTokens != 100 {
		t.Errorf("unexpected event by id: %+v", got)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Purpose != "item-gen" || usage[0].Calls != 1 {
		t.Errorf("unexpected usage: %+v", usage)
	}
}

func TestEventsShareGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendReviewEvent(ctx, ReviewEventData{StudentID: "a", ItemID: "i", Topic: "T", Outcome: "good"})
	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", StudentID: "a", Topic: "T", Action: "start"})
	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "item-gen", Success: true})

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 llm event, got %d", len(events))
	}
	// Two events of other types were appended first.
	if events[0].Sequence != 3 {
		t.Errorf("llm event sequence = %d, want 3", events[0].Sequence)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
