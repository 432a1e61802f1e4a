package cmd

import (
	"github.com/mkale/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyloop",
	Short: "Adaptive learning engine for CS course review",
	Long: "StudyLoop provides spaced repetition scheduling, mastery tracking, struggle\n" +
		"detection, and exam runway planning for introductory CS courses.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLOOP_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(runwayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
