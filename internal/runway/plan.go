package runway

import "time"

// ExamKind distinguishes the two supported exam stakes.
type ExamKind string

const (
	KindMidterm ExamKind = "midterm"
	KindFinal   ExamKind = "final"
)

// Intensity labels how demanding a preparation day is.
type Intensity string

const (
	IntensityHigh   Intensity = "high"
	IntensityMedium Intensity = "medium"
	IntensityLow    Intensity = "low"
	IntensityRest   Intensity = "rest"
)

// MaxRunwayDays bounds the preparation horizon. Exams further away get a
// preview of what the plan will look like starting 7 days out.
const MaxRunwayDays = 7

// StudyBlock is one time block within a preparation day.
type StudyBlock struct {
	Label string  // "Morning", "Afternoon", "Evening"
	Focus string  // what to work on
	Hours float64 // allocated duration
}

// DailyTarget is the plan for a single day of the runway.
type DailyTarget struct {
	DayNumber     int // 1..7
	Date          time.Time
	FocusTopics   []string
	Blocks        []StudyBlock
	GapCheckItems int // quiz items for the evening gap check
	Intensity     Intensity
}

// Runway is a bounded day-by-day exam preparation plan. It is constructed
// fresh on each planning request and owned by the caller; the planner
// does not persist it.
type Runway struct {
	Kind           ExamKind
	ExamDate       time.Time
	DaysUntilExam  int
	DailyTargets   []*DailyTarget
	PriorityTopics []string
	TotalHours     float64
}

// defaultCurriculum is the fallback topic list per exam kind, used when
// the student has no weak-topic signal yet.
var defaultCurriculum = map[ExamKind][]string{
	KindMidterm: {"C Basics", "Arrays", "Algorithms", "Memory"},
	KindFinal:   {"C Programming", "Data Structures", "Python", "SQL", "Web Dev"},
}

// mockExamTopics and sizes per exam kind.
var mockExamTopics = map[ExamKind][]string{
	KindMidterm: {"C Basics", "Arrays", "Algorithms", "Memory"},
	KindFinal:   {"C Programming", "Data Structures", "Python", "SQL", "Web"},
}

var mockExamQuestionCount = map[ExamKind]int{
	KindMidterm: 12,
	KindFinal:   15,
}
