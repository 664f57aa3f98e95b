// Package quiz implements the multiple-choice practice screens: listening
// cloze, vocabulary and bookmark drills.
package quiz

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/screens/summary"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/ui/components"
	"github.com/abhisek/lingoz/internal/ui/layout"
)

// Mode selects what the quiz asks.
type Mode int

const (
	ModeListening Mode = iota
	ModeVocabulary
	ModeBookmarks
)

func (m Mode) kind() string {
	if m == ModeListening {
		return session.KindListening
	}
	return session.KindVocabulary
}

// QuizScreen serves one exercise after another until the learner leaves.
type QuizScreen struct {
	svc    *session.Service
	mode   Mode
	ready  exerciseReadyMsg
	choice components.MultiChoice

	loading bool
	errMsg  string
	notice  string
	marked  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackHandler = (*QuizScreen)(nil)

// New creates a QuizScreen in mode.
func New(svc *session.Service, mode Mode) *QuizScreen {
	return &QuizScreen{svc: svc, mode: mode}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.next()
}

func (s *QuizScreen) Title() string {
	switch s.mode {
	case ModeVocabulary:
		return "Vocabulary"
	case ModeBookmarks:
		return "Bookmark Drill"
	}
	return "Listening"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.choice.Submitted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "B", Description: "Bookmark"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Esc", Description: "Finish"},
	}
}

// Back ends the quiz and shows the session summary in its place.
func (s *QuizScreen) Back() tea.Cmd {
	sum := s.svc.Tally().Summary()
	return router.Replace(summary.New(sum))
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exerciseReadyMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = errorText(msg.Err)
			return s, nil
		}
		s.ready = msg
		s.notice = ""
		s.marked = false
		s.choice = components.NewMultiChoice(s.options(), s.answerIndex())
		return s, nil

	case bookmarkSavedMsg:
		if msg.Err != nil {
			s.notice = "Could not save bookmark: " + msg.Err.Error()
			return s, nil
		}
		s.marked = true
		s.notice = fmt.Sprintf("Bookmarked %q (%s)", msg.Bookmark.Word, msg.Bookmark.Translation)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.Back()
	}
	if s.loading {
		return s, nil
	}

	if s.choice.Submitted {
		switch msg.String() {
		case "enter", "n", "space":
			return s, s.next()
		case "b":
			if !s.marked {
				return s, s.bookmark()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.svc.Answer(s.mode.kind(), s.choice.IsCorrect())
	}
	return s, cmd
}

// next requests the following exercise.
func (s *QuizScreen) next() tea.Cmd {
	s.loading = true
	svc, mode := s.svc, s.mode
	return func() tea.Msg {
		ctx := context.Background()
		switch mode {
		case ModeListening:
			ex, err := svc.NextListening(ctx)
			return exerciseReadyMsg{Cloze: ex, Err: err}
		case ModeBookmarks:
			ex, err := svc.NextBookmarkVocabulary(ctx)
			return exerciseReadyMsg{Vocabulary: ex, Err: err}
		default:
			ex, err := svc.NextVocabulary(ctx)
			return exerciseReadyMsg{Vocabulary: ex, Err: err}
		}
	}
}

// bookmark saves the word under study. Vocabulary terms already have their
// translation; a cloze answer is translated first.
func (s *QuizScreen) bookmark() tea.Cmd {
	svc := s.svc
	cloze, vocab := s.ready.Cloze, s.ready.Vocabulary
	return func() tea.Msg {
		ctx := context.Background()
		if vocab != nil {
			b, err := svc.SaveBookmark(ctx, vocab.Term, vocab.CorrectTranslation)
			return bookmarkSavedMsg{Bookmark: b, Err: err}
		}
		b, err := svc.Bookmark(ctx, trimWord(cloze.Answer))
		return bookmarkSavedMsg{Bookmark: b, Err: err}
	}
}

func (s *QuizScreen) options() []string {
	if s.ready.Cloze != nil {
		return s.ready.Cloze.Options
	}
	return s.ready.Vocabulary.Options
}

func (s *QuizScreen) answerIndex() int {
	if s.ready.Cloze != nil {
		return s.ready.Cloze.AnswerIndex()
	}
	return s.ready.Vocabulary.AnswerIndex()
}

func errorText(err error) string {
	if errors.Is(err, session.ErrNoBookmarks) {
		return "No bookmarks yet. Press B after answering a question to save a word."
	}
	return err.Error()
}
