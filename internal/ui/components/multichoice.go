package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/ui/theme"
)

// MultiChoice asks the learner to pick one of up to nine options, by
// number or with the cursor and Enter. Once submitted it ignores input
// and shows the verdict.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{Options: options, CorrectIndex: correctIndex, ChosenIndex: -1}
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted || len(m.Options) == 0 {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k", "shift+tab":
		m.Cursor = (m.Cursor + len(m.Options) - 1) % len(m.Options)
	case "down", "j", "tab":
		m.Cursor = (m.Cursor + 1) % len(m.Options)
	case "enter", "space":
		m.choose(m.Cursor)
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(m.Options) {
			m.choose(n - 1)
		}
	}
	return m, nil
}

func (m *MultiChoice) choose(i int) {
	m.Cursor = i
	m.ChosenIndex = i
	m.Submitted = true
}

// Chosen returns the submitted option, or "" before submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect compares option text rather than index, so a distractor that
// repeats the answer also counts.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen() == m.Options[m.CorrectIndex]
}

func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		marker, style := "  ", theme.Unselected
		switch {
		case m.Submitted && i == m.ChosenIndex && m.IsCorrect():
			marker, style = "✓ ", theme.Correct
		case m.Submitted && i == m.CorrectIndex:
			marker, style = "✓ ", theme.Correct
		case m.Submitted && i == m.ChosenIndex:
			marker, style = "✗ ", theme.Incorrect
		case m.Submitted:
			style = theme.Muted
		case i == m.Cursor:
			marker, style = "▸ ", theme.Selected
		}
		b.WriteString(style.Render(marker + strconv.Itoa(i+1) + ")  " + opt))
		b.WriteByte('\n')
	}
	return b.String()
}
