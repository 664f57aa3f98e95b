package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/lingoz/internal/config"
	"github.com/spf13/cobra"
)

// setupLogging installs a text slog handler writing to w at --log-level.
func setupLogging(cmd *cobra.Command, w io.Writer) error {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", name, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// logToFile redirects logging to the state log file so the TUI owns the
// terminal. The caller closes the returned file.
func logToFile(cmd *cobra.Command) (*os.File, error) {
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := setupLogging(cmd, f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
