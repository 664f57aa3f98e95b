// Package config resolves lingoz settings from command-line flags, the
// environment, the TOML config file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abhisek/lingoz/internal/llm"
	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/textgen"
)

// DefaultLevel is used when no level is configured anywhere.
const DefaultLevel = practice.LevelB1

// Environment variables read by Resolve. The LLM layer reads its own
// LINGOZ_* variables.
const (
	EnvLevel          = "LINGOZ_LEVEL"
	EnvDistractors    = "LINGOZ_DISTRACTORS"
	EnvTargetLanguage = "LINGOZ_TARGET_LANGUAGE"
	EnvDB             = "LINGOZ_DB"
)

// Settings is the fully resolved configuration.
type Settings struct {
	Level    practice.Level
	Practice practice.Config
	TextGen  textgen.Config
	LLM      llm.Config
	DBPath   string
}

// Flags carries command-line overrides. Empty values are ignored.
type Flags struct {
	Level  string
	DBPath string
}

// Resolve merges flags, the environment, file and defaults into Settings.
// Values that fail to parse are reported together; Validate then checks
// the merged result.
func Resolve(file FileConfig, flags Flags) (Settings, error) {
	var errs []error

	s := Settings{
		Level:    DefaultLevel,
		Practice: practice.DefaultConfig(),
		TextGen:  textgen.DefaultConfig(),
	}

	level := firstNonEmpty(flags.Level, os.Getenv(EnvLevel), deref(file.Practice.Level))
	if level != "" {
		l, err := practice.ParseLevel(level)
		if err != nil {
			errs = append(errs, fmt.Errorf("level: %w", err))
		} else {
			s.Level = l
		}
	}

	if file.Practice.Distractors != nil {
		s.Practice.Distractors = *file.Practice.Distractors
	}
	if v := os.Getenv(EnvDistractors); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDistractors, err))
		} else {
			s.Practice.Distractors = n
		}
	}
	if file.Practice.Dedupe != nil {
		s.Practice.Dedupe = *file.Practice.Dedupe
	}

	if file.Practice.SourceLanguage != nil {
		s.TextGen.SourceLanguage = *file.Practice.SourceLanguage
	}
	if v := firstNonEmpty(os.Getenv(EnvTargetLanguage), deref(file.Practice.TargetLanguage)); v != "" {
		s.TextGen.TargetLanguage = v
	}
	if file.Practice.RejectIdentity != nil {
		s.TextGen.RejectIdentity = *file.Practice.RejectIdentity
	}

	base := llm.DefaultConfig()
	if file.LLM.Provider != nil {
		base.Provider = *file.LLM.Provider
	}
	if file.LLM.Model != nil {
		base.SetModel(*file.LLM.Model)
	}
	if file.LLM.Timeout != nil {
		d, err := time.ParseDuration(*file.LLM.Timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("llm timeout: %w", err))
		} else {
			base.Timeout = d
		}
	}
	s.LLM = llm.Resolve(base)

	switch {
	case flags.DBPath != "":
		s.DBPath = flags.DBPath
	case os.Getenv(EnvDB) == "" && file.Database != nil:
		s.DBPath = *file.Database
	default:
		p, err := store.DefaultDBPath()
		if err != nil {
			errs = append(errs, fmt.Errorf("database path: %w", err))
		}
		s.DBPath = p
	}

	return s, errors.Join(errs...)
}

// Validate reports every problem with the practice settings. LLM settings
// are checked separately with ValidateLLM since offline commands never
// contact a provider.
func (s Settings) Validate() error {
	var errs []error
	if s.Level == "" {
		errs = append(errs, errors.New("level is required"))
	}
	if s.Practice.Distractors < 1 {
		errs = append(errs, fmt.Errorf("distractors must be at least 1, got %d", s.Practice.Distractors))
	}
	if s.TextGen.SourceLanguage == "" {
		errs = append(errs, errors.New("source language is required"))
	}
	if s.TextGen.TargetLanguage == "" {
		errs = append(errs, errors.New("target language is required"))
	}
	if s.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if s.LLM.Timeout < 0 {
		errs = append(errs, fmt.Errorf("llm timeout must not be negative, got %s", s.LLM.Timeout))
	}
	return errors.Join(errs...)
}

// ValidateLLM checks that the selected provider is usable.
func (s Settings) ValidateLLM() error {
	return s.LLM.Validate()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
