package store

import (
	"context"
	"fmt"

	"github.com/mkale/studyloop/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetItemID(data.ItemID).
		SetTopic(data.Topic).
		SetOutcome(data.Outcome).
		SetResponseTimeSecs(data.ResponseTimeSecs).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetRepetitions(data.Repetitions).
		SetMasteryScore(data.MasteryScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
