// Package vocab supplies the word pool that distractors and vocabulary
// quizzes draw from.
package vocab

import (
	"context"
	"fmt"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/store"
)

// Source returns random words.
type Source interface {
	// RandomWords returns up to count distinct words. Fewer are returned
	// only when the pool is smaller than count.
	RandomWords(ctx context.Context, count int) ([]string, error)
}

// StoreSource samples words from the store. Words whose level falls in the
// same band as Level are preferred; unlevelled words always qualify. When
// the band holds fewer than count words the whole pool is used.
type StoreSource struct {
	repo  store.WordRepo
	rnd   practice.Rand
	level practice.Level
}

var _ Source = (*StoreSource)(nil)

// NewStoreSource creates a StoreSource. A nil rnd selects practice.DefaultRand.
// An empty level disables level preference.
func NewStoreSource(repo store.WordRepo, rnd practice.Rand, level practice.Level) *StoreSource {
	if rnd == nil {
		rnd = practice.DefaultRand()
	}
	return &StoreSource{repo: repo, rnd: rnd, level: level}
}

func (s *StoreSource) RandomWords(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	words, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	pool := s.preferLevel(words, count)
	return sample(s.rnd, pool, count), nil
}

func (s *StoreSource) preferLevel(words []store.Word, count int) []string {
	var all, banded []string
	for _, w := range words {
		all = append(all, w.Text)
		if s.level == "" || w.Level == "" || practice.Level(w.Level).Band() == s.level.Band() {
			banded = append(banded, w.Text)
		}
	}
	if len(banded) >= count {
		return banded
	}
	return all
}

// sample picks min(count, len(pool)) entries without replacement using a
// partial Fisher-Yates shuffle. pool is modified.
func sample(rnd practice.Rand, pool []string, count int) []string {
	n := min(count, len(pool))
	for i := range n {
		j := i + rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]string, n)
	copy(out, pool[:n])
	return out
}

// StaticSource samples from a fixed list. Useful offline and in tests.
type StaticSource struct {
	words []string
	rnd   practice.Rand
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource creates a StaticSource over words.
func NewStaticSource(words []string, rnd practice.Rand) *StaticSource {
	if rnd == nil {
		rnd = practice.DefaultRand()
	}
	return &StaticSource{words: words, rnd: rnd}
}

func (s *StaticSource) RandomWords(_ context.Context, count int) ([]string, error) {
	pool := make([]string, len(s.words))
	copy(pool, s.words)
	return sample(s.rnd, pool, count), nil
}
