package cmd

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fablingo/fablingo/internal/config"
	"github.com/fablingo/fablingo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fablingo",
	Short: "Adaptive story-based language tutor",
	Long: "Fablingo teaches a language through tiny AI-generated stories built\n" +
		"strictly from the words you already know, plus at most two new ones.",
	SilenceUsage: true,
}

func Execute() error {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FABLINGO_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "default", "Learner ID to operate on")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, config.NewLogger(cfg.Log), nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file / FABLINGO_DB, then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

func learnerID(cmd *cobra.Command) (string, error) {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		return "", fmt.Errorf("--user must not be empty")
	}
	return u, nil
}
