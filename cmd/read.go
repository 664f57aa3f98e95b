package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a generated passage aloud and score your attempt",
	Long: `Generates a passage at your level and prints it. Read it aloud, then type
or pipe in what you said. With --transcript the attempt is read from a file,
or from stdin when the value is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, _ := cmd.Flags().GetString("transcript")
		return withSession(cmd, func(ctx context.Context, e *env, svc *session.Service) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Generating passage...")
			p, err := svc.NextReading(ctx)
			if err != nil {
				return fmt.Errorf("generate passage: %w", err)
			}
			printPassage(out, p)

			transcript, err := readTranscript(cmd.InOrStdin(), out, src)
			if err != nil {
				return err
			}
			res := svc.ScoreReading(ctx, p.Text, transcript)
			svc.Answer(session.KindReading, res.Passed())
			fmt.Fprintln(out)
			printScore(out, res)
			return nil
		})
	},
}

func init() {
	readCmd.Flags().String("transcript", "", `File holding your attempt, or "-" for stdin`)
}

func printPassage(w io.Writer, p practice.Passage) {
	fmt.Fprintln(w)
	if p.Title != "" {
		fmt.Fprintln(w, p.Title)
		fmt.Fprintln(w, strings.Repeat("─", len([]rune(p.Title))))
	}
	fmt.Fprintln(w, p.Text)
	fmt.Fprintf(w, "\n%d words, about %ds to read (level %s)\n", p.WordCount, p.EstimatedReadingSeconds, p.Level)
}

// readTranscript returns the attempt from src. An empty src prompts for a
// single line when in is a terminal and reads all of in otherwise.
func readTranscript(in io.Reader, out io.Writer, src string) (string, error) {
	switch src {
	case "":
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprint(out, "\nType what you read aloud, then press Enter:\n> ")
			line, err := bufio.NewReader(in).ReadString('\n')
			if err != nil && err != io.EOF {
				return "", fmt.Errorf("read transcript: %w", err)
			}
			return line, nil
		}
		fallthrough
	case "-":
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(b), nil
	}
}
