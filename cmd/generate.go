package cmd

import (
	"fmt"
	"os"

	"github.com/mkale/studyloop/internal/itemgen"
	"github.com/mkale/studyloop/internal/llm"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate review items for a topic and add them to a student's deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		student, _ := cmd.Flags().GetString("student")
		subtopic, _ := cmd.Flags().GetString("subtopic")
		count, _ := cmd.Flags().GetInt("count")
		sourceFile, _ := cmd.Flags().GetString("source")

		ctx := cmd.Context()

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := llm.NewProviderFromEnv(ctx, e.store.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		var excerpt string
		if sourceFile != "" {
			b, err := os.ReadFile(sourceFile)
			if err != nil {
				return fmt.Errorf("read source material: %w", err)
			}
			excerpt = string(b)
		}

		// Existing questions in the deck are passed so the batch does
		// not duplicate them.
		var avoid []string
		for _, tm := range e.sched.Topics(student) {
			if tm.Topic != topic {
				continue
			}
			for _, item := range tm.Items {
				avoid = append(avoid, item.QuestionText)
			}
		}

		gen := itemgen.New(provider, itemgen.DefaultConfig())
		items, err := gen.Generate(ctx, itemgen.GenerateInput{
			Topic:          topic,
			Subtopic:       subtopic,
			SourceExcerpt:  excerpt,
			Count:          count,
			AvoidQuestions: avoid,
		})
		if err != nil {
			return fmt.Errorf("generate items: %w", err)
		}

		for _, it := range items {
			r := it.ToReviewItem(topic)
			e.sched.AddItem(student, r)
			fmt.Printf("added %s  [%.1f]  %s\n", r.ID[:8], r.Difficulty, r.QuestionText)
		}

		if err := e.Save(ctx); err != nil {
			return err
		}
		fmt.Printf("\n%d items added to %s's %s deck\n", len(items), student, topic)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("student", "s", "default", "Student the items are for")
	generateCmd.Flags().String("subtopic", "", "Narrow the topic, e.g. \"pointer arithmetic\"")
	generateCmd.Flags().IntP("count", "n", 5, "Number of items to generate")
	generateCmd.Flags().String("source", "", "Path to course material to ground the items in")
}
