package srs

import (
	"time"

	"github.com/mkale/studyloop/internal/store"
)

func (s *Scheduler) loadFromSnapshot(data *store.SRSSnapshotData) {
	if data == nil || data.Students == nil {
		return
	}
	for studentID, sd := range data.Students {
		d := newStudentDeck()
		for _, topic := range sd.TopicOrder {
			td, ok := sd.Topics[topic]
			if !ok {
				continue
			}
			tm := &TopicMastery{
				StudentID:       studentID,
				Topic:           topic,
				MasteryScore:    td.MasteryScore,
				Confidence:      td.Confidence,
				Attempts:        td.Attempts,
				Correct:         td.Correct,
				Streak:          td.Streak,
				Items:           make([]*ReviewItem, 0, len(td.Items)),
				LastPracticedAt: parseTimePtr(td.LastPracticedAt),
			}
			for _, id := range td.Items {
				item := itemFromData(id)
				tm.Items = append(tm.Items, item)
				d.byID[item.ID] = item
			}
			d.topics[topic] = tm
			d.topicOrder = append(d.topicOrder, topic)
		}
		// Rebuild the cross-topic insertion order used for due tie-breaks.
		for _, itemID := range sd.ItemOrder {
			if item, ok := d.byID[itemID]; ok {
				d.items = append(d.items, item)
			}
		}
		s.students[studentID] = d
	}
}

// SnapshotData exports the scheduler state for persistence.
func (s *Scheduler) SnapshotData() *store.SRSSnapshotData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := &store.SRSSnapshotData{
		Students: make(map[string]*store.StudentDeckData, len(s.students)),
	}
	for studentID, d := range s.students {
		d.mu.Lock()
		sd := &store.StudentDeckData{
			TopicOrder: append([]string(nil), d.topicOrder...),
			Topics:     make(map[string]*store.TopicMasteryData, len(d.topics)),
		}
		for topic, tm := range d.topics {
			td := &store.TopicMasteryData{
				StudentID:       tm.StudentID,
				Topic:           tm.Topic,
				MasteryScore:    tm.MasteryScore,
				Confidence:      tm.Confidence,
				Attempts:        tm.Attempts,
				Correct:         tm.Correct,
				Streak:          tm.Streak,
				LastPracticedAt: formatTimePtr(tm.LastPracticedAt),
			}
			for _, item := range tm.Items {
				td.Items = append(td.Items, itemToData(item))
			}
			sd.Topics[topic] = td
		}
		for _, item := range d.items {
			sd.ItemOrder = append(sd.ItemOrder, item.ID)
		}
		d.mu.Unlock()
		data.Students[studentID] = sd
	}
	return data
}

func itemFromData(id *store.ReviewItemData) *ReviewItem {
	return &ReviewItem{
		ID:              id.ID,
		Topic:           id.Topic,
		Subtopic:        id.Subtopic,
		Difficulty:      id.Difficulty,
		ContentSource:   id.ContentSource,
		QuestionText:    id.QuestionText,
		CorrectAnswer:   id.CorrectAnswer,
		Distractors:     append([]string(nil), id.Distractors...),
		EaseFactor:      id.EaseFactor,
		IntervalDays:    id.IntervalDays,
		Repetitions:     id.Repetitions,
		LastReviewedAt:  parseTimePtr(id.LastReviewedAt),
		NextReviewAt:    parseTimePtr(id.NextReviewAt),
		TotalReviews:    id.TotalReviews,
		CorrectCount:    id.CorrectCount,
		AvgResponseTime: id.AvgResponseTime,
	}
}

func itemToData(item *ReviewItem) *store.ReviewItemData {
	return &store.ReviewItemData{
		ID:              item.ID,
		Topic:           item.Topic,
		Subtopic:        item.Subtopic,
		Difficulty:      item.Difficulty,
		ContentSource:   item.ContentSource,
		QuestionText:    item.QuestionText,
		CorrectAnswer:   item.CorrectAnswer,
		Distractors:     append([]string(nil), item.Distractors...),
		EaseFactor:      item.EaseFactor,
		IntervalDays:    item.IntervalDays,
		Repetitions:     item.Repetitions,
		LastReviewedAt:  formatTimePtr(item.LastReviewedAt),
		NextReviewAt:    formatTimePtr(item.NextReviewAt),
		TotalReviews:    item.TotalReviews,
		CorrectCount:    item.CorrectCount,
		AvgResponseTime: item.AvgResponseTime,
	}
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
