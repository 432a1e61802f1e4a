package cmd

import (
	"fmt"

	"github.com/mkale/studyloop/internal/srs"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <item-id> <forgot|hard|good|easy>",
	Short: "Record a review outcome and reschedule the item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		student, _ := cmd.Flags().GetString("student")
		responseTime, _ := cmd.Flags().GetFloat64("time")

		outcome, err := srs.ParseOutcome(args[1])
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		item, err := e.sched.RecordOutcome(ctx, student, itemID, outcome, responseTime)
		if err != nil {
			return err
		}

		fmt.Printf("%s  ease %.2f  interval %.1fd  reps %d\n",
			outcome, item.EaseFactor, item.IntervalDays, item.Repetitions)
		if item.NextReviewAt != nil {
			fmt.Printf("next review: %s\n", item.NextReviewAt.Local().Format("2006-01-02 15:04"))
		}

		return e.Save(ctx)
	},
}

func init() {
	recordCmd.Flags().StringP("student", "s", "default", "Student recording the outcome")
	recordCmd.Flags().Float64P("time", "t", 0, "Response time in seconds")
}
