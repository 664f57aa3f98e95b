// Package session runs practice rounds: it fetches generated text and
// vocabulary, hands them to the exercise builder and keeps the score.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/lingoz/internal/observe"
	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/textgen"
	"github.com/abhisek/lingoz/internal/vocab"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxGenerateAttempts bounds how often generation is retried after a
// retryable validation failure.
const MaxGenerateAttempts = 3

// ErrNoBookmarks is returned by bookmark-mode vocabulary rounds when
// nothing has been bookmarked yet.
var ErrNoBookmarks = errors.New("no bookmarks saved")

// ErrNoConversation is returned by Reply when no conversation partner is
// configured.
var ErrNoConversation = errors.New("conversation practice is not available")

// Deps are the collaborators of a Service. Generator, Translator and Words
// are required.
type Deps struct {
	Generator    textgen.Generator
	Translator   textgen.Translator
	Words        vocab.Source
	Bookmarks    store.BookmarkRepo   // optional
	Conversation textgen.Conversation // optional
	Metrics      *observe.Metrics     // optional
	Logger       *slog.Logger         // optional, defaults to slog.Default()
	Rand         practice.Rand        // optional, defaults to practice.DefaultRand()
}

// Service produces exercises for one practice session.
type Service struct {
	id      string
	level   practice.Level
	deps    Deps
	builder *practice.Builder
	rnd     practice.Rand
	log     *slog.Logger
	tally   *Tally
}

// New creates a Service at level.
func New(deps Deps, level practice.Level, cfg practice.Config) (*Service, error) {
	if deps.Generator == nil || deps.Translator == nil || deps.Words == nil {
		return nil, errors.New("session: generator, translator and word source are required")
	}
	rnd := deps.Rand
	if rnd == nil {
		rnd = practice.DefaultRand()
	}
	builder, err := practice.NewBuilder(rnd, cfg)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		id:      id,
		level:   level,
		deps:    deps,
		builder: builder,
		rnd:     rnd,
		log:     log.With("session", id),
		tally:   NewTally(),
	}, nil
}

// ID returns the session identifier.
func (s *Service) ID() string { return s.id }

// Level returns the session level.
func (s *Service) Level() practice.Level { return s.level }

// Tally returns the running score of the session.
func (s *Service) Tally() *Tally { return s.tally }

// NextListening fetches a sentence and distractor words concurrently and
// builds a cloze exercise from them.
func (s *Service) NextListening(ctx context.Context) (*practice.ClozeExercise, error) {
	var (
		sentence string
		words    []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sentence, err = retryGenerate(gctx, s.log, func(ctx context.Context) (string, error) {
			return s.deps.Generator.GenerateSentence(ctx, s.level)
		})
		return err
	})
	g.Go(func() error {
		var err error
		words, err = s.deps.Words.RandomWords(gctx, s.builder.Distractors())
		if err != nil {
			return fmt.Errorf("fetch distractor words: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ex, err := s.builder.BuildCloze(sentence, words)
	if err != nil {
		return nil, fmt.Errorf("build cloze: %w", err)
	}
	s.recordBuilt(ctx, KindListening)
	return ex, nil
}

// NextVocabulary draws 1+k words, translates all of them concurrently and
// asks for the translation of the first.
func (s *Service) NextVocabulary(ctx context.Context) (*practice.VocabularyExercise, error) {
	k := s.builder.Distractors()
	words, err := s.deps.Words.RandomWords(ctx, k+1)
	if err != nil {
		return nil, fmt.Errorf("fetch vocabulary words: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: word pool is empty", practice.ErrDataUnavailable)
	}

	translations, err := s.translateAll(ctx, words)
	if err != nil {
		return nil, err
	}

	ex, err := s.builder.BuildVocabulary(words[0], translations[0], translations[1:])
	if err != nil {
		return nil, fmt.Errorf("build vocabulary exercise: %w", err)
	}
	s.recordBuilt(ctx, KindVocabulary)
	return ex, nil
}

// NextBookmarkVocabulary quizzes a random bookmarked word using its stored
// translation. Distractors are translations of random pool words.
func (s *Service) NextBookmarkVocabulary(ctx context.Context) (*practice.VocabularyExercise, error) {
	if s.deps.Bookmarks == nil {
		return nil, ErrNoBookmarks
	}
	marks, err := s.deps.Bookmarks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if len(marks) == 0 {
		return nil, ErrNoBookmarks
	}
	term := marks[s.rnd.IntN(len(marks))]

	words, err := s.deps.Words.RandomWords(ctx, s.builder.Distractors())
	if err != nil {
		return nil, fmt.Errorf("fetch vocabulary words: %w", err)
	}
	candidates, err := s.translateAll(ctx, words)
	if err != nil {
		return nil, err
	}

	ex, err := s.builder.BuildVocabulary(term.Word, term.Translation, candidates)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary exercise: %w", err)
	}
	s.recordBuilt(ctx, KindVocabulary)
	return ex, nil
}

// translateAll translates words concurrently, preserving order.
func (s *Service) translateAll(ctx context.Context, words []string) ([]string, error) {
	out := make([]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range words {
		g.Go(func() error {
			tr, err := retryGenerate(gctx, s.log, func(ctx context.Context) (string, error) {
				return s.deps.Translator.Translate(ctx, w)
			})
			if err != nil {
				return fmt.Errorf("translate %q: %w", w, err)
			}
			out[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// NextReading generates a passage at the session level.
func (s *Service) NextReading(ctx context.Context) (practice.Passage, error) {
	p, err := retryGenerate(ctx, s.log, func(ctx context.Context) (practice.Passage, error) {
		return s.deps.Generator.GeneratePassage(ctx, s.level)
	})
	if err != nil {
		return practice.Passage{}, err
	}
	s.recordBuilt(ctx, KindReading)
	return p, nil
}

// ScoreReading scores a read-aloud transcript against passage and records
// the result.
func (s *Service) ScoreReading(ctx context.Context, passage, transcript string) practice.ScoreResult {
	res := practice.Evaluate(passage, transcript)
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordReading(ctx, res.Accuracy)
	}
	s.log.DebugContext(ctx, "reading scored", "accuracy", res.Accuracy, "spoken", res.Spoken)
	return res
}

// Reply sends the learner's message to the conversation partner and
// returns its answer. history holds the earlier turns, oldest first; the
// caller appends both text and the reply once it succeeds.
func (s *Service) Reply(ctx context.Context, history []textgen.Turn, text string) (string, error) {
	if !s.CanConverse() {
		return "", ErrNoConversation
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty message", practice.ErrMalformedInput)
	}
	reply, err := retryGenerate(ctx, s.log, func(ctx context.Context) (string, error) {
		return s.deps.Conversation.Reply(ctx, s.level, history, text)
	})
	if err != nil {
		return "", fmt.Errorf("reply: %w", err)
	}
	s.recordBuilt(ctx, KindConversation)
	return reply, nil
}

// CanConverse reports whether Reply has a conversation partner.
func (s *Service) CanConverse() bool {
	return s.deps.Conversation != nil
}

// Answer records the learner's choice for an exercise of kind.
func (s *Service) Answer(kind string, correct bool) {
	s.tally.Record(kind, correct)
}

// Bookmark translates word and saves it to the bookmark list.
func (s *Service) Bookmark(ctx context.Context, word string) (*store.Bookmark, error) {
	if s.deps.Bookmarks == nil {
		return nil, errors.New("bookmarks are not available")
	}
	word = strings.ToLower(strings.TrimSpace(word))
	tr, err := retryGenerate(ctx, s.log, func(ctx context.Context) (string, error) {
		return s.deps.Translator.Translate(ctx, word)
	})
	if err != nil {
		return nil, fmt.Errorf("translate %q: %w", word, err)
	}
	return s.SaveBookmark(ctx, word, tr)
}

// SaveBookmark stores word with an already known translation.
func (s *Service) SaveBookmark(ctx context.Context, word, translation string) (*store.Bookmark, error) {
	if s.deps.Bookmarks == nil {
		return nil, errors.New("bookmarks are not available")
	}
	b, err := s.deps.Bookmarks.Add(ctx, word, translation)
	if err != nil {
		return nil, fmt.Errorf("save bookmark: %w", err)
	}
	s.log.InfoContext(ctx, "bookmark saved", "word", b.Word)
	return b, nil
}

func (s *Service) recordBuilt(ctx context.Context, kind string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordExercise(ctx, kind)
	}
	s.log.DebugContext(ctx, "exercise ready", "kind", kind, "level", s.level)
}

// retryGenerate calls fn up to MaxGenerateAttempts times. Only retryable
// validation failures are retried; provider errors already went through
// the provider's own retry policy.
func retryGenerate[T any](ctx context.Context, log *slog.Logger, fn func(context.Context) (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for attempt := 1; attempt <= MaxGenerateAttempts; attempt++ {
		v, err = fn(ctx)
		if err == nil {
			return v, nil
		}
		var valErr *textgen.ValidationError
		if !errors.As(err, &valErr) || !valErr.Retryable {
			break
		}
		log.WarnContext(ctx, "generated text rejected", "attempt", attempt, "validator", valErr.Validator, "reason", valErr.Message)
	}
	return v, err
}
