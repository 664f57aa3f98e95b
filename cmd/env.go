package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/lingoz/internal/config"
	"github.com/abhisek/lingoz/internal/llm"
	"github.com/abhisek/lingoz/internal/observe"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/textgen"
	"github.com/abhisek/lingoz/internal/vocab"
	"github.com/spf13/cobra"
)

// env is what practice commands share: resolved settings and an open store.
type env struct {
	settings config.Settings
	store    *store.Store
}

// loadSettings reads .env and the config file, then merges them with the
// global flags.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Settings{}, err
	}

	path, _ := cmd.Flags().GetString("config")
	file, err := config.LoadFile(path)
	if err != nil {
		return config.Settings{}, err
	}

	level, _ := cmd.Flags().GetString("level")
	db, _ := cmd.Flags().GetString("db")
	s, err := config.Resolve(file, config.Flags{Level: level, DBPath: db})
	if err != nil {
		return s, fmt.Errorf("resolve config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// openEnv resolves settings, opens the store and installs the seed word
// list on first run.
func openEnv(cmd *cobra.Command) (*env, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureDir(s.DBPath); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	st, err := store.Open(s.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	n, err := vocab.EnsureSeeded(cmd.Context(), st.WordRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("seed vocabulary: %w", err)
	}
	if n > 0 {
		slog.Info("installed seed vocabulary", "words", n)
	}
	return &env{settings: s, store: st}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// newSession wires the LLM provider, text generator and word pool into a
// practice session.
func (e *env) newSession(ctx context.Context) (*session.Service, error) {
	if err := e.settings.ValidateLLM(); err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	metrics := observe.DefaultMetrics()
	provider, err := llm.NewProvider(ctx, e.settings.LLM, e.store.EventRepo(), metrics)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	gen := textgen.New(provider, e.settings.TextGen)

	svc, err := session.New(session.Deps{
		Generator:    gen,
		Translator:   gen,
		Words:        vocab.NewStoreSource(e.store.WordRepo(), nil, e.settings.Level),
		Bookmarks:    e.store.BookmarkRepo(),
		Conversation: gen,
		Metrics:      metrics,
		Logger:       slog.Default(),
	}, e.settings.Level, e.settings.Practice)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	slog.Debug("session started",
		"session", svc.ID(),
		"level", svc.Level(),
		"provider", e.settings.LLM.Provider,
		"model", provider.ModelID())
	return svc, nil
}
