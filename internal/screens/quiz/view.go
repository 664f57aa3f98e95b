package quiz

import (
	"fmt"
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
			fmt.Sprintf("\n\n\n%s\n\nPress any key to go back.", s.errMsg))
	}
	if s.loading || (s.ready.Cloze == nil && s.ready.Vocabulary == nil) {
		return layout.Centered(theme.Muted, width, "\n\n\nPreparing the next exercise...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Muted, width, s.prompt()))
	b.WriteString("\n\n")
	b.WriteString(s.renderQuestion(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.choice.Submitted {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Hint, width, s.notice))
	}
	return b.String()
}

func (s *QuizScreen) prompt() string {
	if s.ready.Cloze != nil {
		return "Choose the word that fills the gap."
	}
	return "Choose the translation."
}

func (s *QuizScreen) renderQuestion(width int) string {
	if v := s.ready.Vocabulary; v != nil {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, v.Term)
	}

	c := s.ready.Cloze
	text := c.BlankedText
	if s.choice.Submitted {
		text = c.FullText
	}
	lines := layout.Wrap(text, layout.TextWidth(width))
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, practice.Placeholder, theme.Blank.Render(practice.Placeholder))
	}
	body := theme.Body.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *QuizScreen) renderFeedback(width int) string {
	if s.choice.IsCorrect() {
		return layout.Centered(theme.Correct, width, "Correct!")
	}
	answer := ""
	if s.ready.Cloze != nil {
		answer = s.ready.Cloze.Answer
	} else {
		answer = s.ready.Vocabulary.CorrectTranslation
	}
	return layout.Centered(theme.Incorrect, width, "Not quite") + "\n" +
		layout.Centered(theme.Muted, width, "Correct answer: "+answer)
}

// trimWord strips punctuation glued to a token, "station." becomes "station".
func trimWord(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
