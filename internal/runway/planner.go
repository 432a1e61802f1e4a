package runway

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkale/studyloop/internal/srs"
)

// WeakTopicThreshold is the mastery cutoff used to pick priority topics
// for the runway (looser than the scheduler's default weak threshold,
// since exam prep should cover borderline topics too).
const WeakTopicThreshold = 0.7

// maxPriorityTopics caps how many weak topics drive the plan.
const maxPriorityTopics = 5

// Clock supplies the current time, injected for deterministic tests.
type Clock func() time.Time

// Planner builds exam preparation runways from the current mastery
// snapshot. Gap checks and mock exams delegate item selection entirely to
// the spaced repetition scheduler.
type Planner struct {
	sched *srs.Scheduler
	now   Clock
}

// NewPlanner creates a planner backed by the given scheduler.
func NewPlanner(sched *srs.Scheduler, clock Clock) *Planner {
	if clock == nil {
		clock = time.Now
	}
	return &Planner{sched: sched, now: clock}
}

// GenerateRunway produces a day-by-day preparation plan for the exam,
// clamped to at most 7 days. Priority topics come from the student's weak
// topics; with no mastery signal yet, a default curriculum keyed by exam
// kind is used instead.
func (p *Planner) GenerateRunway(studentID string, examDate time.Time, kind ExamKind, hoursPerDay float64) *Runway {
	now := p.now()

	daysUntil := int(examDate.Sub(now).Hours() / 24)
	if daysUntil > MaxRunwayDays {
		daysUntil = MaxRunwayDays
		examDate = now.AddDate(0, 0, MaxRunwayDays)
	}

	weak := p.sched.WeakTopics(studentID, WeakTopicThreshold)
	var priority []string
	for i, w := range weak {
		if i == maxPriorityTopics {
			break
		}
		priority = append(priority, w.Topic)
	}
	if len(priority) == 0 {
		priority = append([]string(nil), defaultCurriculum[kind]...)
	}

	var targets []*DailyTarget
	for day := 1; day <= daysUntil && day <= MaxRunwayDays; day++ {
		targets = append(targets, buildDailyTarget(day, now.AddDate(0, 0, day), hoursPerDay, priority))
	}

	return &Runway{
		Kind:           kind,
		ExamDate:       examDate,
		DaysUntilExam:  daysUntil,
		DailyTargets:   targets,
		PriorityTopics: priority,
		TotalHours:     hoursPerDay * float64(len(targets)),
	}
}

// buildDailyTarget applies the fixed per-day template.
func buildDailyTarget(day int, date time.Time, hours float64, priority []string) *DailyTarget {
	switch {
	case day == 1:
		// Day 1: diagnostic and planning.
		focus := priority
		if len(focus) > 2 {
			focus = focus[:2]
		}
		return &DailyTarget{
			DayNumber:   day,
			Date:        date,
			FocusTopics: append([]string(nil), focus...),
			Blocks: []StudyBlock{
				{Label: "Morning", Focus: "Diagnostic review: " + strings.Join(focus, ", "), Hours: hours * 0.4},
				{Label: "Afternoon", Focus: "Practice problems on weak areas", Hours: hours * 0.4},
				{Label: "Evening", Focus: "Gap check quiz (5 items)", Hours: hours * 0.2},
			},
			GapCheckItems: 5,
			Intensity:     IntensityMedium,
		}

	case day <= 3:
		// Days 2-3: intensive single-topic deep dive, rotating through
		// the priority topics.
		topic := priority[(day-2)%len(priority)]
		return &DailyTarget{
			DayNumber:   day,
			Date:        date,
			FocusTopics: []string{topic},
			Blocks: []StudyBlock{
				{Label: "Morning", Focus: "Deep dive: " + topic, Hours: hours * 0.5},
				{Label: "Afternoon", Focus: "Practice problems and worked examples", Hours: hours * 0.3},
				{Label: "Evening", Focus: "Gap check + review mistakes", Hours: hours * 0.2},
			},
			GapCheckItems: 5,
			Intensity:     IntensityHigh,
		}

	case day == 4:
		// Day 4: mock exam day.
		return &DailyTarget{
			DayNumber:   day,
			Date:        date,
			FocusTopics: []string{"Mock exam", "Comprehensive review"},
			Blocks: []StudyBlock{
				{Label: "Morning", Focus: "20-minute timed mock exam", Hours: hours * 0.3},
				{Label: "Afternoon", Focus: "Review mock exam errors in detail", Hours: hours * 0.5},
				{Label: "Evening", Focus: "Targeted practice on missed topics", Hours: hours * 0.2},
			},
			GapCheckItems: 3,
			Intensity:     IntensityHigh,
		}

	case day <= 6:
		// Days 5-6: targeted review of high-yield material.
		return &DailyTarget{
			DayNumber:   day,
			Date:        date,
			FocusTopics: []string{"High-yield topics", "Review challenging problems"},
			Blocks: []StudyBlock{
				{Label: "Morning", Focus: "Review must-know concepts", Hours: hours * 0.4},
				{Label: "Afternoon", Focus: "Practice recent problem set questions", Hours: hours * 0.4},
				{Label: "Evening", Focus: "Light gap check", Hours: hours * 0.2},
			},
			GapCheckItems: 3,
			Intensity:     IntensityMedium,
		}

	default:
		// Day 7: light review and rest before the exam.
		return &DailyTarget{
			DayNumber:   day,
			Date:        date,
			FocusTopics: []string{"Quick review", "Mental preparation"},
			Blocks: []StudyBlock{
				{Label: "Morning", Focus: "Skim through notes and flashcards", Hours: hours * 0.4},
				{Label: "Afternoon", Focus: "One or two easy practice problems", Hours: hours * 0.2},
				{Label: "Evening", Focus: "Rest and get good sleep!", Hours: hours * 0.4},
			},
			GapCheckItems: 0,
			Intensity:     IntensityRest,
		}
	}
}

// AdjustAfterGapCheck re-prioritizes the next unscheduled day after a gap
// check surfaces new weak topics: the topics are prepended to that day's
// focus list and its first time block becomes a prerequisite refresher
// (duration unchanged). No-op when the plan has no further days.
func (p *Planner) AdjustAfterGapCheck(rw *Runway, completedDayNumber int, weakTopicsFound []string) {
	nextIdx := completedDayNumber // day numbers are 1-based, targets 0-indexed
	if nextIdx < 0 || nextIdx >= len(rw.DailyTargets) {
		return
	}

	next := rw.DailyTargets[nextIdx]
	next.FocusTopics = append(append([]string(nil), weakTopicsFound...), next.FocusTopics...)

	if len(next.Blocks) > 0 {
		named := weakTopicsFound
		if len(named) > 2 {
			named = named[:2]
		}
		next.Blocks[0].Focus = "Prerequisite refresher: " + strings.Join(named, ", ")
	}
}

// Question is a quiz item selected for a gap check or mock exam. Options
// holds the correct answer followed by the distractors; shuffling is the
// presentation layer's job.
type Question struct {
	ItemID     string
	Topic      string
	Question   string
	Options    []string
	Difficulty float64
	Source     string
}

// GapCheckQuestions selects the evening gap check items for one day of
// the runway, drawn from the day's focus topics via the scheduler.
func (p *Planner) GapCheckQuestions(studentID string, rw *Runway, dayNumber int) []Question {
	if dayNumber <= 0 || dayNumber > len(rw.DailyTargets) {
		return nil
	}
	target := rw.DailyTargets[dayNumber-1]
	if target.GapCheckItems == 0 {
		return nil
	}

	topics := target.FocusTopics
	if len(topics) > 2 {
		topics = topics[:2]
	}

	var questions []Question
	for _, topic := range topics {
		perTopic := target.GapCheckItems / len(topics)
		for _, item := range p.sched.DueItems(studentID, topic, perTopic) {
			questions = append(questions, Question{
				ItemID:   item.ID,
				Topic:    topic,
				Question: item.QuestionText,
				Options:  append([]string{item.CorrectAnswer}, item.Distractors...),
				Source:   fmt.Sprintf("Gap check - Day %d", dayNumber),
			})
		}
	}

	if len(questions) > target.GapCheckItems {
		questions = questions[:target.GapCheckItems]
	}
	return questions
}

// MockExam assembles a timed mock exam covering the exam kind's key
// topics with a mix of due and new items.
func (p *Planner) MockExam(studentID string, kind ExamKind) []Question {
	topics := mockExamTopics[kind]
	total := mockExamQuestionCount[kind]
	if len(topics) == 0 {
		return nil
	}

	perTopic := total / len(topics)
	var questions []Question
	for _, topic := range topics {
		due := p.sched.DueItems(studentID, topic, perTopic/2)
		fresh := p.sched.NewItems(studentID, topic, perTopic/2)

		picked := append(append([]*srs.ReviewItem(nil), due...), fresh...)
		if len(picked) > perTopic {
			picked = picked[:perTopic]
		}
		for _, item := range picked {
			questions = append(questions, Question{
				ItemID:     item.ID,
				Topic:      topic,
				Question:   item.QuestionText,
				Options:    append([]string{item.CorrectAnswer}, item.Distractors...),
				Difficulty: item.Difficulty,
			})
		}
	}

	if len(questions) > total {
		questions = questions[:total]
	}
	return questions
}
