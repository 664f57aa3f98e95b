package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FileConfig represents the TOML configuration file. Pointer fields tell
// an unset key apart from a zero value.
type FileConfig struct {
	Database *string        `toml:"database"`
	Practice PracticeConfig `toml:"practice"`
	LLM      LLMConfig      `toml:"llm"`
}

// PracticeConfig maps the [practice] table.
type PracticeConfig struct {
	Level          *string `toml:"level"`
	Distractors    *int    `toml:"distractors"`
	Dedupe         *bool   `toml:"dedupe"`
	SourceLanguage *string `toml:"source-language"`
	TargetLanguage *string `toml:"target-language"`
	RejectIdentity *bool   `toml:"reject-identity"`
}

// LLMConfig maps the [llm] table.
type LLMConfig struct {
	Provider *string `toml:"provider"`
	Model    *string `toml:"model"`
	Timeout  *string `toml:"timeout"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}

	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("decode config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no arguments it reads
// .env in the working directory. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
