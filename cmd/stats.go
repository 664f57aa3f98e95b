package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word pool, bookmark and LLM usage totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		words, err := e.store.WordRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		bookmarks, err := e.store.BookmarkRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list bookmarks: %w", err)
		}
		usage, err := e.store.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		var calls, tokens int
		for _, u := range usage {
			calls += u.Calls
			tokens += u.InputTokens + u.OutputTokens
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Level:       %s\n", e.settings.Level)
		fmt.Fprintf(out, "Languages:   %s → %s\n", e.settings.TextGen.SourceLanguage, e.settings.TextGen.TargetLanguage)
		fmt.Fprintf(out, "Word pool:   %d\n", words)
		fmt.Fprintf(out, "Bookmarks:   %d\n", len(bookmarks))
		fmt.Fprintf(out, "LLM calls:   %d (%d tokens)\n", calls, tokens)
		fmt.Fprintf(out, "Database:    %s\n", e.settings.DBPath)
		return nil
	},
}
