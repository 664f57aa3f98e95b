package cmd

import (
	"context"

	"github.com/abhisek/lingoz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingoz",
	Short: "Language practice in the terminal",
	Long: `lingoz generates listening, vocabulary and reading exercises with an LLM and
holds practice conversations, in an interactive terminal app or as
line-oriented quizzes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd, cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command with ctx, which is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides LINGOZ_DB env var)")
	pf.String("config", config.DefaultConfigPath(), "Path to TOML config file")
	pf.String("level", "", "CEFR level to practice at, A1..C2 (overrides LINGOZ_LEVEL)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(talkCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
