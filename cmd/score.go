package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a reading attempt against its passage (no LLM)",
	Example: `  lingoz score --passage "the cat sat on the mat" --transcript "the cat sat"
  lingoz score --passage @passage.txt --transcript @attempt.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		passageArg, _ := cmd.Flags().GetString("passage")
		transcriptArg, _ := cmd.Flags().GetString("transcript")

		passage, err := textArg(passageArg)
		if err != nil {
			return fmt.Errorf("passage: %w", err)
		}
		if strings.TrimSpace(passage) == "" {
			return errors.New("passage is empty")
		}
		transcript, err := textArg(transcriptArg)
		if err != nil {
			return fmt.Errorf("transcript: %w", err)
		}

		printScore(cmd.OutOrStdout(), practice.Evaluate(passage, transcript))
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("passage", "", "Passage text, or @FILE")
	scoreCmd.Flags().String("transcript", "", "What was read aloud, or @FILE")
	_ = scoreCmd.MarkFlagRequired("passage")
	_ = scoreCmd.MarkFlagRequired("transcript")
}

// textArg returns s, or the contents of the file it names when it starts
// with "@".
func textArg(s string) (string, error) {
	name, ok := strings.CutPrefix(s, "@")
	if !ok {
		return s, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printScore(w io.Writer, r practice.ScoreResult) {
	fmt.Fprintf(w, "Accuracy:        %5.1f%%\n", r.Accuracy)
	fmt.Fprintf(w, "Word existence:  %5.1f%%  (%d of %d spoken words found)\n",
		r.WordExistence*100, r.Matched, r.Spoken)
	fmt.Fprintf(w, "Word order:      %5.1f%%\n", r.AveragePosition*100)
	if r.Passed() {
		fmt.Fprintln(w, "✓ Well read!")
	} else {
		fmt.Fprintf(w, "✗ Keep practicing: %.0f%% needed to pass.\n", practice.PassThreshold)
	}
}
