package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	statsHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	statsWeak = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	statsGood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery, weak topics, and learning style",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		topics := e.sched.Topics(student)
		if len(topics) == 0 {
			fmt.Println("No review data yet. Generate some items first: studyloop generate <topic>")
			return nil
		}

		fmt.Println(statsHeader.Render("Topic mastery"))
		for _, tm := range topics {
			bar := masteryBar(tm.MasteryScore)
			fmt.Printf("  %-24s %s %.2f  (confidence %.2f, %d/%d correct, streak %d)\n",
				tm.Topic, bar, tm.MasteryScore, tm.Confidence, tm.Correct, tm.Attempts, tm.Streak)
		}

		weak := e.sched.WeakTopics(student, 0.6)
		fmt.Println()
		fmt.Println(statsHeader.Render("Weak topics (mastery < 0.6)"))
		if len(weak) == 0 {
			fmt.Println(statsGood.Render("  none — keep reviewing"))
		} else {
			for _, w := range weak {
				fmt.Println(statsWeak.Render(fmt.Sprintf("  %-24s %.2f", w.Topic, w.MasteryScore)))
			}
		}

		if p := e.tracker.GetProfile(student); p != nil {
			fmt.Println()
			fmt.Println(statsHeader.Render("Learning style"))
			fmt.Printf("  sessions: %d  avg length: %.1f min  hints used: %d\n",
				p.TotalSessions, p.AvgSessionLength, p.TotalHintsUsed)
			fmt.Printf("  hint preference %.2f   persistence %.2f   help seeking %.2f\n",
				p.HintPreference, p.Persistence, p.HelpSeeking)

			if struggles := e.tracker.StruggleTopics(student); len(struggles) > 0 {
				fmt.Println()
				fmt.Println(statsHeader.Render("Struggle topics"))
				for _, s := range struggles {
					fmt.Printf("  %-24s %d signals\n", s.Topic, s.Count)
				}
			}
		}

		return nil
	},
}

// masteryBar renders a 10-cell bar for a score in [0, 1].
func masteryBar(score float64) string {
	filled := int(score * 10)
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	if score < 0.6 {
		return statsWeak.Render(bar)
	}
	return statsGood.Render(bar)
}

func init() {
	statsCmd.Flags().StringP("student", "s", "default", "Student to report on")
}
