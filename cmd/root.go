package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tanmay/physiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "physiq",
	Short: "Physics exam in your terminal",
	Long:  "Physiq — a terminal exam app for multiple-choice physics questions built on diagram images.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite results database (overrides PHYSIQ_DB env var)")
	rootCmd.Flags().String("bank", "", "Path to question bank JSON file (overrides PHYSIQ_BANK env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PHYSIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
