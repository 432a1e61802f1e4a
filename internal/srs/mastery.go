package srs

import (
	"math"
	"time"
)

// Mastery estimation weights. The raw score combines accuracy, streak, and
// recency; it is clamped only at the end, so a long streak can temporarily
// mask a low success rate.
const (
	maxStreakBonus    = 0.2
	streakBonusStep   = 0.02
	maxRecencyPenalty = 0.3
	recencyPenaltyDay = 0.01

	maxConfidence     = 0.9
	baseConfidence    = 0.1
	confidencePerTry  = 0.05
)

// updateMastery recomputes the mastery score and confidence for a topic.
// Invoked after every graded outcome; not separately callable.
func updateMastery(tm *TopicMastery, now time.Time) {
	if tm.Attempts == 0 {
		return
	}

	successRate := float64(tm.Correct) / float64(tm.Attempts)
	streakBonus := math.Min(maxStreakBonus, float64(tm.Streak)*streakBonusStep)

	recencyPenalty := 0.0
	if tm.LastPracticedAt != nil {
		daysSince := int(now.Sub(*tm.LastPracticedAt).Hours() / 24)
		recencyPenalty = math.Min(maxRecencyPenalty, float64(daysSince)*recencyPenaltyDay)
	}

	raw := successRate + streakBonus - recencyPenalty
	tm.MasteryScore = clamp(raw, 0, 1)

	// Confidence grows with sample size regardless of correctness.
	tm.Confidence = math.Min(maxConfidence, baseConfidence+float64(tm.Attempts)*confidencePerTry)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
