package runway

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkale/studyloop/internal/srs"
)

// fixedClock returns an untyped func so it satisfies both this package's
// Clock and the scheduler's.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// seedWeakTopic records enough failures for a topic to register as weak.
func seedWeakTopic(t *testing.T, sched *srs.Scheduler, studentID, topic string) {
	t.Helper()
	id := topic + "-item"
	sched.AddItem(studentID, srs.NewReviewItem(id, topic, "", 0.5))
	for i := 0; i < 3; i++ {
		_, err := sched.RecordOutcome(context.Background(), studentID, id, srs.OutcomeForgot, 20)
		require.NoError(t, err)
	}
}

func TestGenerateRunway_FullWeek(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	exam := now.AddDate(0, 0, 7)
	rw := p.GenerateRunway("alice", exam, KindMidterm, 3)

	assert.Equal(t, 7, rw.DaysUntilExam)
	require.Len(t, rw.DailyTargets, 7)
	assert.Equal(t, 21.0, rw.TotalHours)

	for i, d := range rw.DailyTargets {
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, now.AddDate(0, 0, i+1), d.Date)
	}
}

func TestGenerateRunway_ClampsDistantExam(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	exam := now.AddDate(0, 0, 30)
	rw := p.GenerateRunway("alice", exam, KindMidterm, 3)

	assert.Equal(t, MaxRunwayDays, rw.DaysUntilExam)
	assert.Len(t, rw.DailyTargets, MaxRunwayDays)
	// The plan previews the final week, so the horizon is pulled in too.
	assert.Equal(t, now.AddDate(0, 0, MaxRunwayDays), rw.ExamDate)
}

func TestGenerateRunway_ShortHorizon(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	exam := now.AddDate(0, 0, 3)
	rw := p.GenerateRunway("alice", exam, KindFinal, 2)

	assert.Equal(t, 3, rw.DaysUntilExam)
	require.Len(t, rw.DailyTargets, 3)
	assert.Equal(t, 6.0, rw.TotalHours)
	assert.Equal(t, exam, rw.ExamDate)
}

func TestGenerateRunway_DefaultCurriculumWithoutSignal(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)
	assert.Equal(t, []string{"C Basics", "Arrays", "Algorithms", "Memory"}, rw.PriorityTopics)

	rw = p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindFinal, 3)
	assert.Equal(t, []string{"C Programming", "Data Structures", "Python", "SQL", "Web Dev"}, rw.PriorityTopics)
}

func TestGenerateRunway_WeakTopicsDrivePriority(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	seedWeakTopic(t, sched, "alice", "Pointers")
	seedWeakTopic(t, sched, "alice", "Recursion")

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)

	assert.ElementsMatch(t, []string{"Pointers", "Recursion"}, rw.PriorityTopics)

	// Day 1 focuses on the top two priority topics.
	d1 := rw.DailyTargets[0]
	assert.Equal(t, rw.PriorityTopics[:2], d1.FocusTopics)
}

func TestGenerateRunway_PriorityCappedAtFive(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	for i := 0; i < 8; i++ {
		seedWeakTopic(t, sched, "alice", fmt.Sprintf("Topic-%d", i))
	}

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)
	assert.Len(t, rw.PriorityTopics, 5)
}

func TestGenerateRunway_DayTemplates(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 4)
	require.Len(t, rw.DailyTargets, 7)

	d1 := rw.DailyTargets[0]
	assert.Equal(t, IntensityMedium, d1.Intensity)
	assert.Equal(t, 5, d1.GapCheckItems)
	require.Len(t, d1.Blocks, 3)
	assert.Equal(t, "Morning", d1.Blocks[0].Label)
	assert.Equal(t, "Diagnostic review: C Basics, Arrays", d1.Blocks[0].Focus)
	assert.InDelta(t, 1.6, d1.Blocks[0].Hours, 1e-9)
	assert.InDelta(t, 0.8, d1.Blocks[2].Hours, 1e-9)

	// Days 2-3 rotate through the priority topics.
	d2 := rw.DailyTargets[1]
	assert.Equal(t, IntensityHigh, d2.Intensity)
	assert.Equal(t, []string{"C Basics"}, d2.FocusTopics)
	assert.Equal(t, "Deep dive: C Basics", d2.Blocks[0].Focus)

	d3 := rw.DailyTargets[2]
	assert.Equal(t, []string{"Arrays"}, d3.FocusTopics)

	d4 := rw.DailyTargets[3]
	assert.Equal(t, IntensityHigh, d4.Intensity)
	assert.Equal(t, 3, d4.GapCheckItems)
	assert.Equal(t, "20-minute timed mock exam", d4.Blocks[0].Focus)

	d5 := rw.DailyTargets[4]
	assert.Equal(t, IntensityMedium, d5.Intensity)
	assert.Equal(t, 3, d5.GapCheckItems)

	d7 := rw.DailyTargets[6]
	assert.Equal(t, IntensityRest, d7.Intensity)
	assert.Equal(t, 0, d7.GapCheckItems)
	assert.Equal(t, "Rest and get good sleep!", d7.Blocks[2].Focus)

	// Every day's blocks sum to the daily hour budget.
	for _, d := range rw.DailyTargets {
		var sum float64
		for _, b := range d.Blocks {
			sum += b.Hours
		}
		assert.InDelta(t, 4.0, sum, 1e-9, "day %d", d.DayNumber)
	}
}

func TestAdjustAfterGapCheck_ReprioritizesNextDay(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)

	p.AdjustAfterGapCheck(rw, 1, []string{"Loops", "Pointers", "Recursion"})

	d2 := rw.DailyTargets[1]
	assert.Equal(t, []string{"Loops", "Pointers", "Recursion", "C Basics"}, d2.FocusTopics)
	// The refresher names at most two topics.
	assert.Equal(t, "Prerequisite refresher: Loops, Pointers", d2.Blocks[0].Focus)
	// Block durations are untouched.
	assert.InDelta(t, 1.5, d2.Blocks[0].Hours, 1e-9)
}

func TestAdjustAfterGapCheck_NoFurtherDays(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)

	// Completing the last day has nothing to adjust; must not panic.
	p.AdjustAfterGapCheck(rw, 7, []string{"Loops"})
	assert.Equal(t, []string{"Quick review", "Mental preparation"}, rw.DailyTargets[6].FocusTopics)
}

func TestGapCheckQuestions_DrawsFromFocusTopics(t *testing.T) {
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	// Make the default curriculum topics weak so they drive the plan, and
	// give each one due items to draw from.
	due := now.AddDate(0, 0, -1)
	addDue := func(id, topic string) {
		item := srs.NewReviewItem(id, topic, "", 0.5)
		item.QuestionText = "Q: " + id
		item.CorrectAnswer = "A"
		item.Distractors = []string{"B", "C", "D"}
		item.NextReviewAt = &due
		sched.AddItem("alice", item)
	}
	for i := 0; i < 4; i++ {
		addDue(fmt.Sprintf("cb-%d", i), "C Basics")
		addDue(fmt.Sprintf("ar-%d", i), "Arrays")
	}

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)

	qs := p.GapCheckQuestions("alice", rw, 1)
	require.NotEmpty(t, qs)
	assert.LessOrEqual(t, len(qs), rw.DailyTargets[0].GapCheckItems)

	for _, q := range qs {
		assert.Contains(t, []string{"C Basics", "Arrays"}, q.Topic)
		assert.Equal(t, "Gap check - Day 1", q.Source)
		require.Len(t, q.Options, 4)
		assert.Equal(t, "A", q.Options[0])
	}
}

func TestGapCheckQuestions_RestDayHasNone(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	rw := p.GenerateRunway("alice", now.AddDate(0, 0, 7), KindMidterm, 3)

	assert.Nil(t, p.GapCheckQuestions("alice", rw, 7))
	assert.Nil(t, p.GapCheckQuestions("alice", rw, 0))
	assert.Nil(t, p.GapCheckQuestions("alice", rw, 8))
}

func TestMockExam_SizesAndTopics(t *testing.T) {
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	// Give every midterm topic one due and one fresh item.
	due := now.AddDate(0, 0, -1)
	for i, topic := range []string{"C Basics", "Arrays", "Algorithms", "Memory"} {
		d := srs.NewReviewItem(fmt.Sprintf("due-%d", i), topic, "", 0.5)
		d.QuestionText = "due question"
		d.CorrectAnswer = "A"
		d.Distractors = []string{"B", "C", "D"}
		d.NextReviewAt = &due
		sched.AddItem("alice", d)

		f := srs.NewReviewItem(fmt.Sprintf("fresh-%d", i), topic, "", 0.3)
		f.QuestionText = "fresh question"
		f.CorrectAnswer = "A"
		f.Distractors = []string{"B", "C", "D"}
		sched.AddItem("alice", f)
	}

	qs := p.MockExam("alice", KindMidterm)
	// 4 topics, 12 questions budgeted, 2 items available per topic.
	assert.Len(t, qs, 8)

	perTopic := map[string]int{}
	for _, q := range qs {
		perTopic[q.Topic]++
		assert.Len(t, q.Options, 4)
	}
	for _, topic := range []string{"C Basics", "Arrays", "Algorithms", "Memory"} {
		assert.Equal(t, 2, perTopic[topic], topic)
	}
}

func TestMockExam_EmptyDeck(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(nil, fixedClock(now), nil)
	p := NewPlanner(sched, fixedClock(now))

	assert.Empty(t, p.MockExam("alice", KindFinal))
}
