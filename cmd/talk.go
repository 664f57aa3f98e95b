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
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/textgen"
	"github.com/abhisek/lingoz/internal/vocab"
	"github.com/spf13/cobra"
)

var talkCmd = &cobra.Command{
	Use:   "talk",
	Short: "Practice conversation with a friendly teacher",
	Long: `Starts a conversation with a teacher persona at your level. Type (or paste
a transcript of) what you would say; each line is one message.

  /words       list the words of the last reply
  /save N|WORD bookmark a word of the last reply, translated automatically
  /quit        end the conversation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, e *env, svc *session.Service) error {
			return runTalk(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), talkConfig{
				reply:    svc.Reply,
				bookmark: svc.Bookmark,
			})
		})
	},
}

type talkConfig struct {
	reply    func(ctx context.Context, history []textgen.Turn, text string) (string, error)
	bookmark func(ctx context.Context, word string) (*store.Bookmark, error)
}

// runTalk reads messages from in until /quit or end of input. A failed
// reply is reported and the message can be sent again.
func runTalk(ctx context.Context, in io.Reader, out io.Writer, cfg talkConfig) error {
	scanner := bufio.NewScanner(in)
	var (
		history []textgen.Turn
		words   []string
	)

	fmt.Fprintln(out, "Conversation: type a message, /words, /save N|WORD or /quit.")
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch {
		case line == "":
			continue
		case cmd == "/quit":
			fmt.Fprintf(out, "── %d messages exchanged ──\n", len(history)/2)
			return nil
		case cmd == "/words":
			if len(words) == 0 {
				fmt.Fprintln(out, "No reply yet.")
			}
			for i, w := range words {
				fmt.Fprintf(out, "  %d) %s\n", i+1, w)
			}
			continue
		case cmd == "/save":
			word := pickWord(words, strings.TrimSpace(arg))
			if word == "" {
				fmt.Fprintln(out, "Usage: /save N or /save WORD")
				continue
			}
			b, err := cfg.bookmark(ctx, word)
			if err != nil {
				fmt.Fprintf(out, "Could not save %q: %v\n", word, err)
				continue
			}
			fmt.Fprintf(out, "Bookmarked %q (%s)\n", b.Word, b.Translation)
			continue
		}

		reply, err := cfg.reply(ctx, history, line)
		if err != nil {
			if errors.Is(err, session.ErrNoConversation) || ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(out, "(no reply: %v)\n", err)
			continue
		}
		history = append(history, textgen.Turn{Learner: true, Text: line}, textgen.Turn{Text: reply})
		words = vocab.WordsIn(reply)
		fmt.Fprintf(out, "Teacher: %s\n", reply)
	}

	fmt.Fprintf(out, "── %d messages exchanged ──\n", len(history)/2)
	return nil
}

// pickWord resolves a /save argument: a 1-based index into words, or a
// word typed out.
func pickWord(words []string, arg string) string {
	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(words) {
			return words[n-1]
		}
		return ""
	}
	if w := vocab.WordsIn(arg); len(w) > 0 {
		return w[0]
	}
	return ""
}
