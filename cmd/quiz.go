package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/lingoz/internal/session"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Fill in the missing word of generated sentences",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		return withSession(cmd, func(ctx context.Context, e *env, svc *session.Service) error {
			next := func(ctx context.Context) (*question, error) {
				ex, err := svc.NextListening(ctx)
				if err != nil {
					return nil, err
				}
				return &question{
					prompt:  ex.BlankedText,
					options: ex.Options,
					check:   ex.Check,
					answer:  ex.Answer,
					reveal:  ex.FullText,
				}, nil
			}
			return runQuiz(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), quizConfig{
				title:  "Listening",
				count:  count,
				next:   next,
				record: func(ok bool) { svc.Answer(session.KindListening, ok) },
			})
		})
	},
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Pick the right translation of words",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		fromBookmarks, _ := cmd.Flags().GetBool("bookmarks")
		return withSession(cmd, func(ctx context.Context, e *env, svc *session.Service) error {
			lang := e.settings.TextGen.TargetLanguage
			next := func(ctx context.Context) (*question, error) {
				build := svc.NextVocabulary
				if fromBookmarks {
					build = svc.NextBookmarkVocabulary
				}
				ex, err := build(ctx)
				if err != nil {
					return nil, err
				}
				return &question{
					prompt:  fmt.Sprintf("What is %q in %s?", ex.Term, lang),
					options: ex.Options,
					check:   ex.Check,
					answer:  ex.CorrectTranslation,
				}, nil
			}
			title := "Vocabulary"
			if fromBookmarks {
				title = "Bookmark drill"
			}
			return runQuiz(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), quizConfig{
				title:  title,
				count:  count,
				next:   next,
				record: func(ok bool) { svc.Answer(session.KindVocabulary, ok) },
			})
		})
	},
}

func init() {
	listenCmd.Flags().IntP("count", "n", 5, "Number of exercises")
	vocabCmd.Flags().IntP("count", "n", 5, "Number of exercises")
	vocabCmd.Flags().Bool("bookmarks", false, "Drill bookmarked words instead of the word pool")
}

// withSession opens the environment and a session, then calls fn.
func withSession(cmd *cobra.Command, fn func(context.Context, *env, *session.Service) error) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	svc, err := e.newSession(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, e, svc)
}

// question is one multiple-choice item of a line-oriented quiz.
type question struct {
	prompt  string
	options []string
	check   func(choice string) bool
	answer  string
	reveal  string // shown after answering, optional
}

type quizConfig struct {
	title  string
	count  int
	next   func(ctx context.Context) (*question, error)
	record func(correct bool)
}

// runQuiz asks cfg.count questions on out, reading numbered answers from in.
// An empty line skips a question and "q" ends the quiz. Generation failures
// are reported and the quiz moves on; a missing bookmark list or a
// cancelled context stops it.
func runQuiz(ctx context.Context, in io.Reader, out io.Writer, cfg quizConfig) error {
	scanner := bufio.NewScanner(in)
	var answered, correct int

	fmt.Fprintf(out, "%s: %d exercises. Answer with the option number, q to stop.\n\n", cfg.title, cfg.count)

quiz:
	for i := 1; i <= cfg.count; i++ {
		q, err := cfg.next(ctx)
		if err != nil {
			if errors.Is(err, session.ErrNoBookmarks) || ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(out, "Exercise %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Fprintf(out, "── Exercise %d/%d ──\n", i, cfg.count)
		fmt.Fprintln(out, q.prompt)
		for j, o := range q.options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o)
		}

		var choice int
		for choice == 0 {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				break quiz
			}
			text := strings.TrimSpace(scanner.Text())
			switch {
			case text == "":
				fmt.Fprint(out, "(skipped)\n\n")
				continue quiz
			case strings.EqualFold(text, "q"):
				break quiz
			}
			n, err := strconv.Atoi(text)
			if err != nil || n < 1 || n > len(q.options) {
				fmt.Fprintf(out, "Pick a number between 1 and %d.", len(q.options))
				continue
			}
			choice = n
		}

		ok := q.check(q.options[choice-1])
		answered++
		if cfg.record != nil {
			cfg.record(ok)
		}
		if ok {
			correct++
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. Answer: %s\n", q.answer)
		}
		if q.reveal != "" {
			fmt.Fprintln(out, q.reveal)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
