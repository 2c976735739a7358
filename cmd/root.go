package cmd

import (
	"github.com/abhisek/safeguard/internal/config"
	"github.com/abhisek/safeguard/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safeguard",
	Short: "Disaster preparedness trainer",
	Long:  "SafeGuard: a terminal app for learning disaster preparedness, practising with quizzes and reaching emergency services.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SAFEGUARD_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a content JSON file (overrides SAFEGUARD_CONTENT env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SAFEGUARD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentPath returns --content, then SAFEGUARD_CONTENT. Empty means
// the built-in content.
func resolveContentPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	return cfg.ContentPath
}
