package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/store"
	"gopkg.in/yaml.v3"
)

// ErrEmptyList is returned when a word list holds no words.
var ErrEmptyList = errors.New("word list is empty")

// LoadFile reads a word list, choosing the format by extension: .yaml and
// .yml are YAML, anything else is plain text. defaultLevel applies to words
// without their own level.
func LoadFile(path string, defaultLevel practice.Level) ([]store.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []store.Word
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		words, err = ParseYAML(f, defaultLevel)
	default:
		words, err = ParseText(f, defaultLevel)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ParseText reads one word per line with an optional level column
// separated by whitespace. Blank lines and lines starting with # are
// skipped. Words are lowercased.
func ParseText(r io.Reader, defaultLevel practice.Level) ([]store.Word, error) {
	var words []store.Word
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: expected word and optional level, got %q", lineNo, line)
		}
		w, err := newWord(fields[0], fields[1:], defaultLevel)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

type yamlWord struct {
	Word  string `yaml:"word"`
	Level string `yaml:"level"`
}

// ParseYAML reads a YAML sequence of {word, level} mappings.
func ParseYAML(r io.Reader, defaultLevel practice.Level) ([]store.Word, error) {
	var entries []yamlWord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyList
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	words := make([]store.Word, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Word) == "" {
			return nil, fmt.Errorf("entry %d: word is empty", i+1)
		}
		var level []string
		if e.Level != "" {
			level = []string{e.Level}
		}
		w, err := newWord(e.Word, level, defaultLevel)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

func newWord(text string, level []string, defaultLevel practice.Level) (store.Word, error) {
	w := store.Word{
		Text:  strings.ToLower(strings.TrimSpace(text)),
		Level: string(defaultLevel),
	}
	if len(level) > 0 {
		l, err := practice.ParseLevel(level[0])
		if err != nil {
			return store.Word{}, err
		}
		w.Level = string(l)
	}
	return w, nil
}
