package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bm"},
	Short:   "Manage bookmarked words",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <word> [translation]",
	Short: "Bookmark a word, translating it with the LLM unless a translation is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := strings.ToLower(strings.TrimSpace(args[0]))
		if word == "" {
			return errors.New("word is empty")
		}

		if len(args) == 2 {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			b, err := e.store.BookmarkRepo().Add(cmd.Context(), word, strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("save bookmark: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s → %s (id %d)\n", b.Word, b.Translation, b.ID)
			return nil
		}

		return withSession(cmd, func(ctx context.Context, e *env, svc *session.Service) error {
			b, err := svc.Bookmark(ctx, word)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s → %s (id %d)\n", b.Word, b.Translation, b.ID)
			return nil
		})
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		bookmarks, err := e.store.BookmarkRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list bookmarks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(bookmarks) == 0 {
			fmt.Fprintln(out, "No bookmarks yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-20s  %-24s  %s\n", "ID", "Word", "Translation", "Saved")
		fmt.Fprintln(out, rule(64))
		for _, b := range bookmarks {
			fmt.Fprintf(out, "%-5d  %-20s  %-24s  %s\n",
				b.ID,
				truncate(b.Word, 20),
				truncate(b.Translation, 24),
				b.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var bookmarkRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Delete a bookmark",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.BookmarkRepo().Delete(cmd.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("bookmark %d not found", id)
			}
			return fmt.Errorf("delete bookmark: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted bookmark %d\n", id)
		return nil
	},
}

func init() {
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkRmCmd)
}
