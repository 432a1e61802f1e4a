package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review, most overdue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		items := e.sched.DueItems(student, topic, limit)
		if len(items) == 0 {
			fmt.Println("Nothing due. Nice.")
			return nil
		}

		now := time.Now()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTOPIC\tOVERDUE\tEASE\tREPS\tQUESTION")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%.0fh\t%.2f\t%d\t%s\n",
				it.ID[:8], it.Topic, it.OverdueHours(now), it.EaseFactor, it.Repetitions, truncate(it.QuestionText, 60))
		}
		return w.Flush()
	},
}

func init() {
	dueCmd.Flags().StringP("student", "s", "default", "Student whose deck to list")
	dueCmd.Flags().StringP("topic", "t", "", "Only items for this topic")
	dueCmd.Flags().IntP("limit", "n", 20, "Maximum items to list")
}
