package practice

import (
	"fmt"
	"strings"
)

// DefaultDistractors is the number of wrong options shown next to the
// correct one.
const DefaultDistractors = 3

// Config controls how a Builder assembles option lists.
type Config struct {
	// Distractors is the number of wrong options per exercise.
	Distractors int

	// Dedupe drops candidates equal to the correct value or to an earlier
	// candidate before options are taken. Off by default: upstream word
	// sources may return the answer itself, and that duplicate is shown.
	Dedupe bool
}

// DefaultConfig returns the standard option-building settings.
func DefaultConfig() Config {
	return Config{Distractors: DefaultDistractors}
}

// Builder constructs exercises from already-fetched text.
// A Builder holds no state besides its Rand and configuration; it is safe
// for concurrent use whenever the Rand is.
type Builder struct {
	rnd Rand
	cfg Config
}

// NewBuilder creates a Builder. A nil rnd selects DefaultRand.
func NewBuilder(rnd Rand, cfg Config) (*Builder, error) {
	if cfg.Distractors < 1 {
		return nil, fmt.Errorf("%w: distractor count must be at least 1, got %d", ErrMalformedInput, cfg.Distractors)
	}
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &Builder{rnd: rnd, cfg: cfg}, nil
}

// Distractors returns how many candidates each exercise consumes.
func (b *Builder) Distractors() int {
	return b.cfg.Distractors
}

// BuildOptions returns the first Distractors candidates plus correct, in
// uniformly random order. The result always has Distractors+1 entries.
func (b *Builder) BuildOptions(correct string, candidates []string) ([]string, error) {
	k := b.cfg.Distractors
	if b.cfg.Dedupe {
		candidates = dedupe(correct, candidates)
	}
	if len(candidates) < k {
		return nil, fmt.Errorf("%w: need %d distractor candidates, got %d", ErrDataUnavailable, k, len(candidates))
	}

	options := make([]string, 0, k+1)
	options = append(options, candidates[:k]...)
	options = append(options, correct)

	b.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}

// BuildCloze blanks one interior token of sentence and builds options for
// it from candidates. The sentence needs at least three tokens.
func (b *Builder) BuildCloze(sentence string, candidates []string) (*ClozeExercise, error) {
	tokens := strings.Fields(sentence)
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: cloze needs at least 3 words, got %d", ErrMalformedInput, len(tokens))
	}

	// Uniform over [1, n-2].
	idx := b.rnd.IntN(len(tokens)-2) + 1
	answer := tokens[idx]

	options, err := b.BuildOptions(answer, candidates)
	if err != nil {
		return nil, err
	}

	blanked := make([]string, len(tokens))
	copy(blanked, tokens)
	blanked[idx] = Placeholder

	return &ClozeExercise{
		FullText:    sentence,
		BlankedText: strings.Join(blanked, " "),
		Answer:      answer,
		BlankIndex:  idx,
		Options:     options,
	}, nil
}

// BuildVocabulary builds a translation quiz for term. candidates are
// translations of other words.
func (b *Builder) BuildVocabulary(term, translation string, candidates []string) (*VocabularyExercise, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: vocabulary term is empty", ErrMalformedInput)
	}
	if strings.TrimSpace(translation) == "" {
		return nil, fmt.Errorf("%w: translation of %q is empty", ErrMalformedInput, term)
	}

	options, err := b.BuildOptions(translation, candidates)
	if err != nil {
		return nil, err
	}
	return &VocabularyExercise{
		Term:               term,
		CorrectTranslation: translation,
		Options:            options,
	}, nil
}

// dedupe keeps the first occurrence of every candidate that differs from
// correct. Comparison is exact, matching Check.
func dedupe(correct string, candidates []string) []string {
	seen := map[string]struct{}{correct: {}}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
