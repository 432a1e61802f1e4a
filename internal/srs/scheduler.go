package srs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mkale/studyloop/internal/store"
)

// ErrItemNotFound is returned when recording an outcome for an item that
// does not exist for the given student. This is the only scheduler
// operation that fails loudly: silently dropping a graded review would
// corrupt the student's progress record without their knowledge.
var ErrItemNotFound = errors.New("review item not found")

// Clock supplies the current time. Injected so scheduling is
// deterministic in tests.
type Clock func() time.Time

// Scheduler decides when each review item should next be shown, using a
// modified SM-2 policy, and maintains per-topic mastery estimates.
//
// State is keyed first by student, then by topic. Operations on the same
// student are serialized by a per-student lock; different students may
// proceed in parallel.
type Scheduler struct {
	mu        sync.RWMutex
	students  map[string]*studentDeck
	now       Clock
	eventRepo store.EventRepo
}

// studentDeck holds one student's topics and items. The items slice
// preserves insertion order across topics, which serves as the tie-break
// when two items are equally overdue.
type studentDeck struct {
	mu         sync.Mutex
	topics     map[string]*TopicMastery
	topicOrder []string
	items      []*ReviewItem
	byID       map[string]*ReviewItem
}

// NewScheduler creates a scheduler, restoring state from the snapshot if
// one is provided. A nil clock defaults to the system clock; a nil
// eventRepo disables the audit trail.
func NewScheduler(snap *store.SnapshotData, clock Clock, eventRepo store.EventRepo) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	s := &Scheduler{
		students:  make(map[string]*studentDeck),
		now:       clock,
		eventRepo: eventRepo,
	}
	if snap != nil && snap.SRS != nil {
		s.loadFromSnapshot(snap.SRS)
	}
	return s
}

func newStudentDeck() *studentDeck {
	return &studentDeck{
		topics: make(map[string]*TopicMastery),
		byID:   make(map[string]*ReviewItem),
	}
}

// deck returns the student's deck, creating it if needed.
func (s *Scheduler) deck(studentID string) *studentDeck {
	s.mu.RLock()
	d, ok := s.students[studentID]
	s.mu.RUnlock()
	if ok {
		return d
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.students[studentID]; ok {
		return d
	}
	d = newStudentDeck()
	s.students[studentID] = d
	return d
}

// lookupDeck returns the student's deck without creating one.
func (s *Scheduler) lookupDeck(studentID string) *studentDeck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students[studentID]
}

// topicMastery returns the deck's mastery record for a topic, creating it
// lazily. Caller must hold the deck lock.
func (d *studentDeck) topicMastery(studentID, topic string) *TopicMastery {
	if tm, ok := d.topics[topic]; ok {
		return tm
	}
	tm := newTopicMastery(studentID, topic)
	d.topics[topic] = tm
	d.topicOrder = append(d.topicOrder, topic)
	return tm
}

// AddItem inserts a review item into the student's deck under the item's
// topic. Items with no scheduled review are scheduled one day out.
func (s *Scheduler) AddItem(studentID string, item *ReviewItem) {
	d := s.deck(studentID)
	d.mu.Lock()
	defer d.mu.Unlock()

	tm := d.topicMastery(studentID, item.Topic)

	if item.NextReviewAt == nil {
		next := s.now().AddDate(0, 0, 1)
		item.NextReviewAt = &next
	}

	tm.Items = append(tm.Items, item)
	d.items = append(d.items, item)
	d.byID[item.ID] = item
}

// RecordOutcome grades a review attempt and reschedules the item using the
// modified SM-2 policy. It returns the updated item so the caller can
// display the next review date.
func (s *Scheduler) RecordOutcome(ctx context.Context, studentID, itemID string, outcome Outcome, responseTimeSeconds float64) (*ReviewItem, error) {
	d := s.lookupDeck(studentID)
	if d == nil {
		return nil, fmt.Errorf("%w: item %q for student %q", ErrItemNotFound, itemID, studentID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	item, ok := d.byID[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %q for student %q", ErrItemNotFound, itemID, studentID)
	}

	now := s.now()
	tm := d.topicMastery(studentID, item.Topic)

	item.TotalReviews++
	item.LastReviewedAt = &now
	item.AvgResponseTime = ResponseTimeSmoothing*responseTimeSeconds +
		(1-ResponseTimeSmoothing)*item.AvgResponseTime

	if outcome == OutcomeForgot {
		// Failed recall: reset to the beginning and make the item harder.
		item.Repetitions = 0
		item.IntervalDays = 1.0
		item.EaseFactor = maxf(MinEaseFactor, item.EaseFactor-0.2)
		tm.Streak = 0
	} else {
		item.CorrectCount++
		tm.Correct++
		tm.Streak++

		switch outcome {
		case OutcomeHard:
			item.EaseFactor = maxf(MinEaseFactor, item.EaseFactor-0.15)
		case OutcomeEasy:
			item.EaseFactor = minf(MaxEaseFactor, item.EaseFactor+0.1)
		}

		// Interval is computed from the repetition count before this
		// review: 1 day, then 6 days, then multiplicative growth.
		switch item.Repetitions {
		case 0:
			item.IntervalDays = 1
		case 1:
			item.IntervalDays = 6
		default:
			item.IntervalDays = item.IntervalDays * item.EaseFactor
		}
		item.Repetitions++
	}

	next := now.Add(time.Duration(item.IntervalDays * 24 * float64(time.Hour)))
	item.NextReviewAt = &next

	tm.Attempts++
	tm.LastPracticedAt = &now
	updateMastery(tm, now)

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendReviewEvent(ctx, store.ReviewEventData{
			StudentID:        studentID,
			ItemID:           itemID,
			Topic:            item.Topic,
			Outcome:          string(outcome),
			ResponseTimeSecs: responseTimeSeconds,
			IntervalDays:     item.IntervalDays,
			EaseFactor:       item.EaseFactor,
			Repetitions:      item.Repetitions,
			MasteryScore:     tm.MasteryScore,
		})
	}

	return item, nil
}

// DueItems returns up to limit items whose next review is at or before
// now, most overdue first. An empty topic matches all topics. Equally
// overdue items keep their insertion order.
func (s *Scheduler) DueItems(studentID, topic string, limit int) []*ReviewItem {
	d := s.lookupDeck(studentID)
	if d == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := s.now()
	var due []*ReviewItem
	for _, item := range d.items {
		if topic != "" && item.Topic != topic {
			continue
		}
		if item.IsDue(now) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].OverdueHours(now) > due[j].OverdueHours(now)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// NewItems returns up to limit never-reviewed items for a topic, easiest
// first, to front-load new material gently.
func (s *Scheduler) NewItems(studentID, topic string, limit int) []*ReviewItem {
	d := s.deck(studentID)
	d.mu.Lock()
	defer d.mu.Unlock()

	tm := d.topicMastery(studentID, topic)
	var fresh []*ReviewItem
	for _, item := range tm.Items {
		if item.TotalReviews == 0 {
			fresh = append(fresh, item)
		}
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Difficulty < fresh[j].Difficulty
	})

	if limit > 0 && len(fresh) > limit {
		fresh = fresh[:limit]
	}
	return fresh
}

// TopicWeakness describes a topic where the student is struggling.
type TopicWeakness struct {
	Topic        string
	MasteryScore float64
	Confidence   float64
}

// WeakTopics returns topics with mastery below threshold and at least
// 3 recorded attempts (to avoid flagging topics with insufficient
// signal), ordered by lowest mastery first.
func (s *Scheduler) WeakTopics(studentID string, threshold float64) []TopicWeakness {
	d := s.lookupDeck(studentID)
	if d == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var weak []TopicWeakness
	for _, topic := range d.topicOrder {
		tm := d.topics[topic]
		if tm.MasteryScore < threshold && tm.Attempts >= 3 {
			weak = append(weak, TopicWeakness{
				Topic:        topic,
				MasteryScore: tm.MasteryScore,
				Confidence:   tm.Confidence,
			})
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].MasteryScore < weak[j].MasteryScore
	})
	return weak
}

// ReviewSchedule returns upcoming reviews for the next daysAhead days,
// grouped by date (formatted YYYY-MM-DD).
func (s *Scheduler) ReviewSchedule(studentID string, daysAhead int) map[string][]*ReviewItem {
	d := s.lookupDeck(studentID)
	if d == nil {
		return map[string][]*ReviewItem{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := s.now()
	schedule := make(map[string][]*ReviewItem)
	for _, item := range d.items {
		if item.NextReviewAt == nil {
			continue
		}
		daysUntil := int(item.NextReviewAt.Sub(now).Hours() / 24)
		if daysUntil >= 0 && daysUntil <= daysAhead {
			key := item.NextReviewAt.Format("2006-01-02")
			schedule[key] = append(schedule[key], item)
		}
	}
	return schedule
}

// Topics returns the student's topic mastery records in insertion order.
func (s *Scheduler) Topics(studentID string) []*TopicMastery {
	d := s.lookupDeck(studentID)
	if d == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]*TopicMastery, 0, len(d.topicOrder))
	for _, topic := range d.topicOrder {
		result = append(result, d.topics[topic])
	}
	return result
}

// StudentIDs returns all students with scheduling state, sorted.
func (s *Scheduler) StudentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.students))
	for id := range s.students {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
