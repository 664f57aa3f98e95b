package cmd

import (
	"fmt"

	"github.com/abhisek/lingoz/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logFile, err := logToFile(cmd)
	if err != nil {
		return err
	}
	defer logFile.Close()

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

	if err := app.Run(ctx, svc, e.store.BookmarkRepo()); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
