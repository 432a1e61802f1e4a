package srs

import (
	"testing"
	"time"
)

func masteryAt(attempts, correct, streak int, lastPracticed *time.Time) *TopicMastery {
	return &TopicMastery{
		StudentID:       "alice",
		Topic:           "Pointers",
		MasteryScore:    0.5,
		Confidence:      0.1,
		Attempts:        attempts,
		Correct:         correct,
		Streak:          streak,
		LastPracticedAt: lastPracticed,
	}
}

func TestUpdateMastery_NoAttemptsLeavesDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tm := masteryAt(0, 0, 0, nil)

	updateMastery(tm, now)

	if tm.MasteryScore != 0.5 {
		t.Errorf("mastery = %v, want untouched 0.5", tm.MasteryScore)
	}
	if tm.Confidence != 0.1 {
		t.Errorf("confidence = %v, want untouched 0.1", tm.Confidence)
	}
}

func TestUpdateMastery_SuccessRateOnly(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tm := masteryAt(10, 7, 0, &now)

	updateMastery(tm, now)

	if !approx(tm.MasteryScore, 0.7) {
		t.Errorf("mastery = %v, want 0.7", tm.MasteryScore)
	}
}

func TestUpdateMastery_StreakBonusCapped(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// 5-streak adds 0.1.
	tm := masteryAt(10, 6, 5, &now)
	updateMastery(tm, now)
	if !approx(tm.MasteryScore, 0.7) {
		t.Errorf("mastery = %v, want 0.7 with 5-streak", tm.MasteryScore)
	}

	// A 30-streak is capped at +0.2.
	tm = masteryAt(40, 24, 30, &now)
	updateMastery(tm, now)
	if !approx(tm.MasteryScore, 0.8) {
		t.Errorf("mastery = %v, want 0.8 with capped streak bonus", tm.MasteryScore)
	}
}

func TestUpdateMastery_RecencyPenalty(t *testing.T) {
	now := time.Date(2025, 3, 21, 9, 0, 0, 0, time.UTC)

	// Practiced 10 days ago: -0.1.
	last := now.AddDate(0, 0, -10)
	tm := masteryAt(10, 8, 0, &last)
	updateMastery(tm, now)
	if !approx(tm.MasteryScore, 0.7) {
		t.Errorf("mastery = %v, want 0.7 after 10 idle days", tm.MasteryScore)
	}

	// Practiced 90 days ago: penalty capped at -0.3.
	last = now.AddDate(0, 0, -90)
	tm = masteryAt(10, 8, 0, &last)
	updateMastery(tm, now)
	if !approx(tm.MasteryScore, 0.5) {
		t.Errorf("mastery = %v, want 0.5 with capped penalty", tm.MasteryScore)
	}
}

func TestUpdateMastery_PartialIdleDayIsFree(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// 23 hours since practice truncates to 0 days: no penalty.
	last := now.Add(-23 * time.Hour)
	tm := masteryAt(10, 8, 0, &last)
	updateMastery(tm, now)
	if !approx(tm.MasteryScore, 0.8) {
		t.Errorf("mastery = %v, want 0.8 within the first day", tm.MasteryScore)
	}
}

func TestUpdateMastery_ClampedToUnitInterval(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Perfect record plus a long streak would exceed 1 unclamped.
	tm := masteryAt(20, 20, 20, &now)
	updateMastery(tm, now)
	if tm.MasteryScore != 1 {
		t.Errorf("mastery = %v, want clamped to 1", tm.MasteryScore)
	}

	// All wrong with a stale topic would go negative unclamped.
	last := now.AddDate(0, 0, -60)
	tm = masteryAt(5, 0, 0, &last)
	updateMastery(tm, now)
	if tm.MasteryScore != 0 {
		t.Errorf("mastery = %v, want clamped to 0", tm.MasteryScore)
	}
}

func TestUpdateMastery_ConfidenceGrowsWithSampleSize(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tm := masteryAt(4, 0, 0, &now)
	updateMastery(tm, now)
	if !approx(tm.Confidence, 0.3) {
		t.Errorf("confidence = %v, want 0.3 after 4 attempts", tm.Confidence)
	}

	// Confidence is independent of correctness and capped at 0.9.
	tm = masteryAt(100, 0, 0, &now)
	updateMastery(tm, now)
	if !approx(tm.Confidence, 0.9) {
		t.Errorf("confidence = %v, want capped at 0.9", tm.Confidence)
	}
}

func TestAccuracy(t *testing.T) {
	tm := masteryAt(0, 0, 0, nil)
	if tm.Accuracy() != 0 {
		t.Errorf("accuracy = %v, want 0 with no attempts", tm.Accuracy())
	}

	tm = masteryAt(8, 6, 0, nil)
	if !approx(tm.Accuracy(), 0.75) {
		t.Errorf("accuracy = %v, want 0.75", tm.Accuracy())
	}
}
