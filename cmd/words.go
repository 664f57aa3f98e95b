package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/vocab"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the vocabulary pool used for quizzes and distractors",
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word list (plain text or YAML)",
	Long: `Imports words into the pool. Plain text files hold one word per line with
an optional CEFR level column; .yaml/.yml files hold a list of {word, level}
entries. Words already in the pool are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var level practice.Level
		if v, _ := cmd.Flags().GetString("default-level"); v != "" {
			l, err := practice.ParseLevel(v)
			if err != nil {
				return err
			}
			level = l
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		words, err := vocab.LoadFile(args[0], level)
		if err != nil {
			return fmt.Errorf("load word list: %w", err)
		}
		kept := vocab.Filter(words, vocab.FilterForLang(e.settings.TextGen.SourceLanguage))

		added, err := e.store.WordRepo().Add(cmd.Context(), kept...)
		if err != nil {
			return fmt.Errorf("import words: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words (%d already present, %d filtered out)\n",
			added, len(kept)-added, len(words)-len(kept))
		return nil
	},
}

var wordsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the pool size by level",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		words, err := e.store.WordRepo().List(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		byLevel := make(map[string]int)
		for _, w := range words {
			byLevel[w.Level]++
		}
		levels := make([]string, 0, len(byLevel))
		for l := range byLevel {
			levels = append(levels, l)
		}
		sort.Strings(levels)

		out := cmd.OutOrStdout()
		for _, l := range levels {
			name := l
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(out, "%-8s  %6d\n", name, byLevel[l])
		}
		fmt.Fprintln(out, rule(16))
		fmt.Fprintf(out, "%-8s  %6d\n", "TOTAL", len(words))
		return nil
	},
}

func init() {
	wordsImportCmd.Flags().String("default-level", "", "CEFR level for entries without one")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsCountCmd)
}
