package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetHintRequests(data.HintRequests).
		SetQuestionsAsked(data.QuestionsAsked).
		SetCopyPasteCount(data.CopyPasteCount).
		SetDurationSecs(data.DurationSecs).
		SetInterventionOffered(data.InterventionOffered).
		SetInterventionAccepted(data.InterventionAccepted)

	if len(data.Signals) > 0 {
		builder = builder.SetSignals(data.Signals)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
