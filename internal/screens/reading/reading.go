// Package reading implements the read-aloud practice screen. The learner
// reads a generated passage and enters what was said; the attempt is
// scored against the passage.
package reading

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/ui/components"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
)

type passageReadyMsg struct {
	Passage practice.Passage
	Err     error
}

type phase int

const (
	phaseLoading phase = iota
	phaseReading
	phaseResult
)

// ReadingScreen shows a passage, collects the transcript and scores it.
type ReadingScreen struct {
	svc     *session.Service
	phase   phase
	passage practice.Passage
	input   components.TranscriptBox
	result  practice.ScoreResult
	errMsg  string
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates a ReadingScreen.
func New(svc *session.Service) *ReadingScreen {
	return &ReadingScreen{svc: svc}
}

func (s *ReadingScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ReadingScreen) Title() string {
	return "Reading"
}

func (s *ReadingScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseReading:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Score"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "N", Description: "New passage"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *ReadingScreen) load() tea.Cmd {
	s.phase = phaseLoading
	svc := s.svc
	return func() tea.Msg {
		p, err := svc.NextReading(context.Background())
		return passageReadyMsg{Passage: p, Err: err}
	}
}

func (s *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case passageReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.passage = msg.Passage
		s.phase = phaseReading
		s.input = components.NewTranscriptBox("Type what you read aloud...")
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" {
			return s, router.Back()
		}
		switch s.phase {
		case phaseReading:
			if msg.String() == "enter" {
				return s.submit()
			}
		case phaseResult:
			if msg.String() == "n" {
				return s, s.load()
			}
			return s, nil
		}
	}

	if s.phase == phaseReading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ReadingScreen) submit() (screen.Screen, tea.Cmd) {
	transcript := s.input.Value()
	if transcript == "" {
		return s, nil
	}
	s.result = s.svc.ScoreReading(context.Background(), s.passage.Text, transcript)
	s.svc.Answer(session.KindReading, s.result.Passed())
	s.phase = phaseResult
	return s, nil
}

func (s *ReadingScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
			fmt.Sprintf("\n\n\nError: %s\n\nPress any key to go back.", s.errMsg))
	}
	if s.phase == phaseLoading {
		return layout.Centered(theme.Muted, width, "\n\n\nWriting a passage for you...")
	}

	tw := layout.TextWidth(width)
	var b strings.Builder
	b.WriteString("\n")
	if s.passage.Title != "" {
		b.WriteString(layout.Centered(theme.Title, width, s.passage.Title))
		b.WriteString("\n")
	}
	b.WriteString(layout.Centered(theme.Muted, width, fmt.Sprintf("%d words · about %d seconds · %s",
		s.passage.WordCount, s.passage.EstimatedReadingSeconds, s.passage.Level)))
	b.WriteString("\n\n")

	body := theme.Body.Render(strings.Join(layout.Wrap(s.passage.Text, tw), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseReading:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View(tw)))
	case phaseResult:
		b.WriteString(s.renderResult(width, tw))
	}
	return b.String()
}

func (s *ReadingScreen) renderResult(width, barWidth int) string {
	r := s.result
	style := theme.Verdict(r.Passed())
	verdict := "Well read!"
	if !r.Passed() {
		verdict = "Keep practising"
	}

	var b strings.Builder
	b.WriteString(layout.Centered(style, width, fmt.Sprintf("%s  %.1f / 100", verdict, r.Accuracy)))
	b.WriteString("\n\n")
	bars := []components.Meter{
		{Label: "Words found", Value: r.WordExistence, Width: barWidth},
		{Label: "Word order ", Value: r.AveragePosition, Width: barWidth},
		{Label: "Accuracy   ", Value: r.Accuracy / 100, Pass: practice.PassThreshold / 100, Width: barWidth},
	}
	for _, bar := range bars {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Muted, width,
		fmt.Sprintf("%d of %d spoken words appear in the passage", r.Matched, r.Spoken)))
	return b.String()
}
