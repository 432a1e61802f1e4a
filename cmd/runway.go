package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/mkale/studyloop/internal/runway"
	"github.com/spf13/cobra"
)

var (
	runwayTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	runwayDay = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	runwayDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	runwayHot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

var runwayCmd = &cobra.Command{
	Use:   "runway <exam-date>",
	Short: "Plan a day-by-day exam preparation runway",
	Long: "Builds a preparation plan for the days before an exam (at most 7),\n" +
		"prioritizing the student's weak topics. Dates are YYYY-MM-DD.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		kindStr, _ := cmd.Flags().GetString("kind")
		hours, _ := cmd.Flags().GetFloat64("hours")

		examDate, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid exam date %q (want YYYY-MM-DD): %w", args[0], err)
		}

		kind, err := parseExamKind(kindStr)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rw := e.planner.GenerateRunway(student, examDate, kind, hours)
		printRunway(rw)
		return nil
	},
}

var mockExamCmd = &cobra.Command{
	Use:   "mock",
	Short: "Assemble a timed mock exam from the student's deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		kindStr, _ := cmd.Flags().GetString("kind")

		kind, err := parseExamKind(kindStr)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		questions := e.planner.MockExam(student, kind)
		if len(questions) == 0 {
			fmt.Println("No items available yet. Generate some first: studyloop generate <topic>")
			return nil
		}

		fmt.Println(runwayTitle.Render(fmt.Sprintf("Mock %s exam — %d questions", kind, len(questions))))
		for i, q := range questions {
			fmt.Printf("\n%s %s\n", runwayDay.Render(fmt.Sprintf("Q%d.", i+1)), q.Question)
			fmt.Println(runwayDim.Render(fmt.Sprintf("    topic: %s  item: %s", q.Topic, q.ItemID[:8])))
		}
		return nil
	},
}

func parseExamKind(s string) (runway.ExamKind, error) {
	switch runway.ExamKind(s) {
	case runway.KindMidterm, runway.KindFinal:
		return runway.ExamKind(s), nil
	default:
		return "", fmt.Errorf("invalid exam kind %q (want midterm or final)", s)
	}
}

func printRunway(rw *runway.Runway) {
	fmt.Println(runwayTitle.Render(fmt.Sprintf("%s runway — %d days, %.0f study hours",
		strings.ToUpper(string(rw.Kind)[:1])+string(rw.Kind)[1:], rw.DaysUntilExam, rw.TotalHours)))
	fmt.Println(runwayDim.Render("exam date: " + rw.ExamDate.Format("Mon Jan 2")))
	fmt.Println(runwayDim.Render("priority topics: " + strings.Join(rw.PriorityTopics, ", ")))

	for _, d := range rw.DailyTargets {
		label := fmt.Sprintf("Day %d — %s", d.DayNumber, d.Date.Format("Mon Jan 2"))
		fmt.Printf("\n%s  %s\n", runwayDay.Render(label), intensityBadge(d.Intensity))
		fmt.Println(runwayDim.Render("  focus: " + strings.Join(d.FocusTopics, ", ")))
		for _, b := range d.Blocks {
			fmt.Printf("  %-9s  %.1fh  %s\n", b.Label, b.Hours, b.Focus)
		}
		if d.GapCheckItems > 0 {
			fmt.Println(runwayDim.Render(fmt.Sprintf("  gap check: %d items", d.GapCheckItems)))
		}
	}
}

func intensityBadge(i runway.Intensity) string {
	switch i {
	case runway.IntensityHigh:
		return runwayHot.Render("[high]")
	case runway.IntensityRest:
		return runwayDim.Render("[rest]")
	default:
		return runwayDim.Render("[" + string(i) + "]")
	}
}

func init() {
	runwayCmd.Flags().StringP("student", "s", "default", "Student to plan for")
	runwayCmd.Flags().StringP("kind", "k", "midterm", "Exam kind: midterm or final")
	runwayCmd.Flags().Float64("hours", 3, "Study hours available per day")

	mockExamCmd.Flags().StringP("student", "s", "default", "Student to draw items for")
	mockExamCmd.Flags().StringP("kind", "k", "midterm", "Exam kind: midterm or final")

	runwayCmd.AddCommand(mockExamCmd)
}
