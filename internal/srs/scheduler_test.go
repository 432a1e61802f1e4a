package srs

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mkale/studyloop/internal/store"
)

// mockEventRepo records appended review events.
type mockEventRepo struct {
	reviewEvents []store.ReviewEventData
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
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

// fixedClock returns a Clock pinned to *at, so tests can move time by
// reassigning the pointed-to value.
func fixedClock(at *time.Time) Clock {
	return func() time.Time { return *at }
}

func testItem(id, topic string, difficulty float64) *ReviewItem {
	return NewReviewItem(id, topic, "", difficulty)
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestAddItem_SchedulesOneDayOut(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	item := testItem("item-1", "Pointers", 0.4)
	sched.AddItem("alice", item)

	if item.NextReviewAt == nil {
		t.Fatal("expected NextReviewAt to be set")
	}
	want := now.AddDate(0, 0, 1)
	if !item.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", item.NextReviewAt, want)
	}
	if item.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", item.EaseFactor, DefaultEaseFactor)
	}
}

func TestRecordOutcome_GoodProgression(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	ctx := context.Background()

	// First success: reps 0 -> interval 1 day.
	item, err := sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)
	if err != nil {
		t.Fatal(err)
	}
	if item.IntervalDays != 1 {
		t.Errorf("interval after 1st review = %v, want 1", item.IntervalDays)
	}
	if item.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", item.Repetitions)
	}

	// Second success: reps 1 -> interval 6 days.
	now = now.AddDate(0, 0, 1)
	item, _ = sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)
	if item.IntervalDays != 6 {
		t.Errorf("interval after 2nd review = %v, want 6", item.IntervalDays)
	}

	// Third success: multiplicative growth, 6 * 2.5 = 15.
	now = now.AddDate(0, 0, 6)
	item, _ = sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)
	if item.IntervalDays != 15 {
		t.Errorf("interval after 3rd review = %v, want 15", item.IntervalDays)
	}
	if item.Repetitions != 3 {
		t.Errorf("repetitions = %d, want 3", item.Repetitions)
	}

	wantNext := now.Add(time.Duration(15 * 24 * float64(time.Hour)))
	if !item.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", item.NextReviewAt, wantNext)
	}
}

func TestRecordOutcome_ForgotResetsProgress(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	ctx := context.Background()
	sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)
	sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)

	item, err := sched.RecordOutcome(ctx, "alice", "item-1", OutcomeForgot, 30)
	if err != nil {
		t.Fatal(err)
	}
	if item.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0 after forgot", item.Repetitions)
	}
	if item.IntervalDays != 1 {
		t.Errorf("interval = %v, want 1 after forgot", item.IntervalDays)
	}
	if !approx(item.EaseFactor, 2.3) {
		t.Errorf("ease = %v, want 2.3 after forgot", item.EaseFactor)
	}

	tm := sched.Topics("alice")[0]
	if tm.Streak != 0 {
		t.Errorf("streak = %d, want 0 after forgot", tm.Streak)
	}
	// Cumulative counters survive the reset.
	if item.TotalReviews != 3 || item.CorrectCount != 2 {
		t.Errorf("TotalReviews/CorrectCount = %d/%d, want 3/2", item.TotalReviews, item.CorrectCount)
	}
}

func TestRecordOutcome_EaseBounds(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	ctx := context.Background()

	// Easy on a fresh item cannot exceed the ceiling.
	item, _ := sched.RecordOutcome(ctx, "alice", "item-1", OutcomeEasy, 5)
	if item.EaseFactor != MaxEaseFactor {
		t.Errorf("ease = %v, want capped at %v", item.EaseFactor, MaxEaseFactor)
	}

	// Repeated failures cannot push ease below the floor.
	for i := 0; i < 10; i++ {
		item, _ = sched.RecordOutcome(ctx, "alice", "item-1", OutcomeForgot, 30)
	}
	if item.EaseFactor != MinEaseFactor {
		t.Errorf("ease = %v, want floored at %v", item.EaseFactor, MinEaseFactor)
	}
}

func TestRecordOutcome_HardReducesEase(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	item, err := sched.RecordOutcome(context.Background(), "alice", "item-1", OutcomeHard, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(item.EaseFactor, 2.35) {
		t.Errorf("ease = %v, want 2.35", item.EaseFactor)
	}
	// Hard still counts as a success.
	if item.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", item.Repetitions)
	}
}

func TestRecordOutcome_ResponseTimeEMA(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	ctx := context.Background()
	item, _ := sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10)
	if !approx(item.AvgResponseTime, 3.0) {
		t.Errorf("AvgResponseTime = %v, want 3", item.AvgResponseTime)
	}

	item, _ = sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 20)
	// 0.3*20 + 0.7*3 = 8.1
	if !approx(item.AvgResponseTime, 8.1) {
		t.Errorf("AvgResponseTime = %v, want 8.1", item.AvgResponseTime)
	}
}

func TestRecordOutcome_UnknownItem(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	ctx := context.Background()
	if _, err := sched.RecordOutcome(ctx, "alice", "no-such-item", OutcomeGood, 10); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
	if _, err := sched.RecordOutcome(ctx, "bob", "item-1", OutcomeGood, 10); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound for unknown student", err)
	}
}

func TestRecordOutcome_AppendsReviewEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{}
	sched := NewScheduler(nil, fixedClock(&now), repo)
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))

	sched.RecordOutcome(context.Background(), "alice", "item-1", OutcomeGood, 12)

	if len(repo.reviewEvents) != 1 {
		t.Fatalf("expected 1 review event, got %d", len(repo.reviewEvents))
	}
	ev := repo.reviewEvents[0]
	if ev.StudentID != "alice" || ev.ItemID != "item-1" || ev.Outcome != "good" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.ResponseTimeSecs != 12 {
		t.Errorf("ResponseTimeSecs = %v, want 12", ev.ResponseTimeSecs)
	}
}

func TestDueItems_MostOverdueFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	mkDue := func(id string, overdueDays int) *ReviewItem {
		item := testItem(id, "Pointers", 0.5)
		due := now.AddDate(0, 0, -overdueDays)
		item.NextReviewAt = &due
		return item
	}
	sched.AddItem("alice", mkDue("item-a", 2))
	sched.AddItem("alice", mkDue("item-b", 5))
	sched.AddItem("alice", mkDue("item-c", 1))

	due := sched.DueItems("alice", "", 0)
	if len(due) != 3 {
		t.Fatalf("expected 3 due items, got %d", len(due))
	}
	if due[0].ID != "item-b" || due[1].ID != "item-a" || due[2].ID != "item-c" {
		t.Errorf("unexpected order: %s, %s, %s", due[0].ID, due[1].ID, due[2].ID)
	}
}

func TestDueItems_TieKeepsInsertionOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	due := now.AddDate(0, 0, -1)
	for _, id := range []string{"first", "second", "third"} {
		item := testItem(id, "Arrays", 0.5)
		item.NextReviewAt = &due
		sched.AddItem("alice", item)
	}

	got := sched.DueItems("alice", "", 0)
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestDueItems_TopicFilterAndLimit(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	due := now.AddDate(0, 0, -1)
	for i, spec := range []struct{ id, topic string }{
		{"p1", "Pointers"}, {"a1", "Arrays"}, {"p2", "Pointers"}, {"p3", "Pointers"},
	} {
		item := testItem(spec.id, spec.topic, 0.5)
		d := due.Add(time.Duration(-i) * time.Hour)
		item.NextReviewAt = &d
		sched.AddItem("alice", item)
	}

	got := sched.DueItems("alice", "Pointers", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for _, item := range got {
		if item.Topic != "Pointers" {
			t.Errorf("item %s has topic %s, want Pointers", item.ID, item.Topic)
		}
	}
	// p3 was inserted last with the largest overdue offset.
	if got[0].ID != "p3" {
		t.Errorf("first item = %s, want p3", got[0].ID)
	}
}

func TestDueItems_ExcludesFuture(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	// AddItem schedules a day out, so a fresh item is never immediately due.
	sched.AddItem("alice", testItem("item-1", "Pointers", 0.5))

	if due := sched.DueItems("alice", "", 0); len(due) != 0 {
		t.Errorf("expected no due items, got %d", len(due))
	}
}

func TestNewItems_EasiestFirstExcludesReviewed(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	sched.AddItem("alice", testItem("hard", "Pointers", 0.9))
	sched.AddItem("alice", testItem("easy", "Pointers", 0.2))
	sched.AddItem("alice", testItem("mid", "Pointers", 0.5))

	sched.RecordOutcome(context.Background(), "alice", "mid", OutcomeGood, 10)

	fresh := sched.NewItems("alice", "Pointers", 0)
	if len(fresh) != 2 {
		t.Fatalf("expected 2 new items, got %d", len(fresh))
	}
	if fresh[0].ID != "easy" || fresh[1].ID != "hard" {
		t.Errorf("unexpected order: %s, %s", fresh[0].ID, fresh[1].ID)
	}
}

func TestWeakTopics_RequiresThreeAttempts(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	ctx := context.Background()

	sched.AddItem("alice", testItem("p1", "Pointers", 0.5))
	sched.AddItem("alice", testItem("a1", "Arrays", 0.5))

	// Pointers: 3 failures, plenty of signal.
	for i := 0; i < 3; i++ {
		sched.RecordOutcome(ctx, "alice", "p1", OutcomeForgot, 20)
	}
	// Arrays: 2 failures, not enough attempts to flag.
	for i := 0; i < 2; i++ {
		sched.RecordOutcome(ctx, "alice", "a1", OutcomeForgot, 20)
	}

	weak := sched.WeakTopics("alice", 0.7)
	if len(weak) != 1 {
		t.Fatalf("expected 1 weak topic, got %d", len(weak))
	}
	if weak[0].Topic != "Pointers" {
		t.Errorf("weak topic = %s, want Pointers", weak[0].Topic)
	}
	if weak[0].MasteryScore != 0 {
		t.Errorf("mastery = %v, want 0 after all failures", weak[0].MasteryScore)
	}
}

func TestWeakTopics_LowestMasteryFirst(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	ctx := context.Background()

	sched.AddItem("alice", testItem("p1", "Pointers", 0.5))
	sched.AddItem("alice", testItem("a1", "Arrays", 0.5))

	// Pointers: 0/3. Arrays: 1/3.
	for i := 0; i < 3; i++ {
		sched.RecordOutcome(ctx, "alice", "p1", OutcomeForgot, 20)
	}
	sched.RecordOutcome(ctx, "alice", "a1", OutcomeGood, 20)
	sched.RecordOutcome(ctx, "alice", "a1", OutcomeForgot, 20)
	sched.RecordOutcome(ctx, "alice", "a1", OutcomeForgot, 20)

	weak := sched.WeakTopics("alice", 0.7)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak topics, got %d", len(weak))
	}
	if weak[0].Topic != "Pointers" || weak[1].Topic != "Arrays" {
		t.Errorf("unexpected order: %s, %s", weak[0].Topic, weak[1].Topic)
	}
}

func TestReviewSchedule_GroupsByDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	mk := func(id string, daysOut int) *ReviewItem {
		item := testItem(id, "Pointers", 0.5)
		next := now.AddDate(0, 0, daysOut)
		item.NextReviewAt = &next
		return item
	}
	sched.AddItem("alice", mk("tomorrow-a", 1))
	sched.AddItem("alice", mk("tomorrow-b", 1))
	sched.AddItem("alice", mk("later", 3))
	sched.AddItem("alice", mk("beyond", 30))

	schedule := sched.ReviewSchedule("alice", 7)
	if len(schedule) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(schedule))
	}
	if got := len(schedule["2025-03-02"]); got != 2 {
		t.Errorf("items on 2025-03-02 = %d, want 2", got)
	}
	if got := len(schedule["2025-03-04"]); got != 1 {
		t.Errorf("items on 2025-03-04 = %d, want 1", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)
	ctx := context.Background()

	sched.AddItem("alice", testItem("item-1", "Pointers", 0.4))
	sched.AddItem("alice", testItem("item-2", "Arrays", 0.6))
	sched.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 14)
	sched.RecordOutcome(ctx, "alice", "item-1", OutcomeHard, 22)

	snap := &store.SnapshotData{SRS: sched.SnapshotData()}
	restored := NewScheduler(snap, fixedClock(&now), nil)

	topics := restored.Topics("alice")
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Topic != "Pointers" || topics[1].Topic != "Arrays" {
		t.Errorf("topic order not preserved: %s, %s", topics[0].Topic, topics[1].Topic)
	}

	tm := topics[0]
	if tm.Attempts != 2 || tm.Correct != 2 || tm.Streak != 2 {
		t.Errorf("attempts/correct/streak = %d/%d/%d, want 2/2/2", tm.Attempts, tm.Correct, tm.Streak)
	}

	item := tm.Items[0]
	if item.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", item.Repetitions)
	}
	if !approx(item.EaseFactor, 2.35) {
		t.Errorf("ease = %v, want 2.35", item.EaseFactor)
	}
	if item.NextReviewAt == nil {
		t.Fatal("expected NextReviewAt to survive the round trip")
	}

	// Recording against the restored scheduler keeps working.
	if _, err := restored.RecordOutcome(ctx, "alice", "item-1", OutcomeGood, 10); err != nil {
		t.Fatalf("RecordOutcome on restored scheduler: %v", err)
	}
}

func TestStudentIDs_Sorted(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := NewScheduler(nil, fixedClock(&now), nil)

	sched.AddItem("charlie", testItem("c1", "SQL", 0.5))
	sched.AddItem("alice", testItem("a1", "SQL", 0.5))
	sched.AddItem("bob", testItem("b1", "SQL", 0.5))

	ids := sched.StudentIDs()
	if len(ids) != 3 || ids[0] != "alice" || ids[1] != "bob" || ids[2] != "charlie" {
		t.Errorf("unexpected order: %v", ids)
	}
}
