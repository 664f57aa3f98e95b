package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Resolve or the LLM layer reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvLevel, EnvDistractors, EnvTargetLanguage, EnvDB,
		"LINGOZ_LLM_PROVIDER",
		"LINGOZ_ANTHROPIC_API_KEY", "LINGOZ_ANTHROPIC_MODEL",
		"LINGOZ_OPENAI_API_KEY", "LINGOZ_OPENAI_MODEL", "LINGOZ_OPENAI_BASE_URL",
		"LINGOZ_GEMINI_API_KEY", "LINGOZ_GEMINI_MODEL",
		"LINGOZ_OPENROUTER_API_KEY", "LINGOZ_OPENROUTER_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func ptr[T any](v T) *T { return &v }

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database = "/tmp/words.db"

[practice]
level = "A2"
distractors = 4
dedupe = true
target-language = "German"

[llm]
provider = "mock"
timeout = "5s"
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.db", *cfg.Database)
	assert.Equal(t, "A2", *cfg.Practice.Level)
	assert.Equal(t, 4, *cfg.Practice.Distractors)
	assert.True(t, *cfg.Practice.Dedupe)
	assert.Equal(t, "German", *cfg.Practice.TargetLanguage)
	assert.Nil(t, cfg.Practice.SourceLanguage)
	assert.Equal(t, "mock", *cfg.LLM.Provider)
	assert.Nil(t, cfg.LLM.Model)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)

	_, err = LoadFile("")
	assert.Error(t, err)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "[practice]\nlevel = \n"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "[practice]\nlevle = \"A1\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "practice.levle")
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Resolve(FileConfig{LLM: LLMConfig{Provider: ptr("mock")}}, Flags{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, s.Level)
	assert.Equal(t, practice.DefaultDistractors, s.Practice.Distractors)
	assert.False(t, s.Practice.Dedupe)
	assert.Equal(t, "English", s.TextGen.SourceLanguage)
	assert.Equal(t, "Turkish", s.TextGen.TargetLanguage)
	assert.Equal(t, "mock", s.LLM.Provider)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), "lingoz", "lingoz.db"), s.DBPath)
	assert.NoError(t, s.Validate())
	assert.NoError(t, s.ValidateLLM())
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	file := FileConfig{
		Database: ptr("/from/file.db"),
		Practice: PracticeConfig{
			Level:          ptr("A1"),
			Distractors:    ptr(2),
			TargetLanguage: ptr("German"),
		},
		LLM: LLMConfig{Provider: ptr("gemini"), Model: ptr("file-model"), Timeout: ptr("3s")},
	}

	s, err := Resolve(file, Flags{})
	require.NoError(t, err)
	assert.Equal(t, practice.LevelA1, s.Level)
	assert.Equal(t, 2, s.Practice.Distractors)
	assert.Equal(t, "German", s.TextGen.TargetLanguage)
	assert.Equal(t, "/from/file.db", s.DBPath)
	assert.Equal(t, "file-model", s.LLM.Model())
	assert.Equal(t, 3*time.Second, s.LLM.Timeout)

	t.Setenv(EnvLevel, "b2")
	t.Setenv(EnvDistractors, "5")
	t.Setenv(EnvTargetLanguage, "French")
	t.Setenv(EnvDB, "/from/env.db")
	t.Setenv("LINGOZ_GEMINI_MODEL", "env-model")

	s, err = Resolve(file, Flags{})
	require.NoError(t, err)
	assert.Equal(t, practice.LevelB2, s.Level)
	assert.Equal(t, 5, s.Practice.Distractors)
	assert.Equal(t, "French", s.TextGen.TargetLanguage)
	assert.Equal(t, "/from/env.db", s.DBPath)
	assert.Equal(t, "env-model", s.LLM.Model())

	s, err = Resolve(file, Flags{Level: "C1", DBPath: "/from/flag.db"})
	require.NoError(t, err)
	assert.Equal(t, practice.LevelC1, s.Level)
	assert.Equal(t, "/from/flag.db", s.DBPath)
}

func TestResolve_StandardKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	s, err := Resolve(FileConfig{LLM: LLMConfig{Provider: ptr("gemini")}}, Flags{})
	require.NoError(t, err)
	assert.Equal(t, "gemini", s.LLM.Provider)
	assert.Equal(t, "g-key", s.LLM.Gemini.APIKey)
	assert.NoError(t, s.ValidateLLM())
}

func TestResolve_ReportsAllParseErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDistractors, "many")

	_, err := Resolve(FileConfig{
		Practice: PracticeConfig{Level: ptr("Z9")},
		LLM:      LLMConfig{Provider: ptr("mock"), Timeout: ptr("soon")},
	}, Flags{})
	require.Error(t, err)
	assert.ErrorIs(t, err, practice.ErrMalformedInput)
	assert.Contains(t, err.Error(), EnvDistractors)
	assert.Contains(t, err.Error(), "llm timeout")
}

func TestSettingsValidate(t *testing.T) {
	var s Settings
	s.Practice.Distractors = 0
	s.LLM.Timeout = -time.Second

	err := s.Validate()
	require.Error(t, err)
	for _, want := range []string{"level", "distractors", "source language", "target language", "database path", "timeout"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LINGOZ_TEST_DOTENV=from-file\nLINGOZ_TEST_PRESET=from-file\n"), 0o644))

	t.Setenv("LINGOZ_TEST_PRESET", "from-env")
	t.Cleanup(func() { os.Unsetenv("LINGOZ_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("LINGOZ_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("LINGOZ_TEST_PRESET"))
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, "/cfg/lingoz/config.toml", DefaultConfigPath())
	assert.Equal(t, "/state/lingoz/lingoz.log", DefaultLogPath())
}
