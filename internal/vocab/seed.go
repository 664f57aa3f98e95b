package vocab

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/abhisek/lingoz/internal/store"
)

//go:embed seed.txt
var seedList string

// SeedWords returns the built-in word list.
func SeedWords() ([]store.Word, error) {
	return ParseText(strings.NewReader(seedList), "")
}

// EnsureSeeded installs the built-in word list when the pool is empty and
// returns how many words were added.
func EnsureSeeded(ctx context.Context, repo store.WordRepo) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	words, err := SeedWords()
	if err != nil {
		return 0, fmt.Errorf("parse seed list: %w", err)
	}
	added, err := repo.Add(ctx, words...)
	if err != nil {
		return 0, fmt.Errorf("install seed list: %w", err)
	}
	return added, nil
}
