package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/ui/theme"
)

// TranscriptBox is a wrapping multi-line box for what the learner read
// aloud, with a live word count. Enter is left to the caller.
type TranscriptBox struct {
	area textarea.Model
}

// NewTranscriptBox creates a focused, unlimited transcript box.
func NewTranscriptBox(placeholder string) TranscriptBox {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = "│ "
	ta.SetHeight(4)
	ta.Focus()
	return TranscriptBox{area: ta}
}

func (t TranscriptBox) Update(msg tea.Msg) (TranscriptBox, tea.Cmd) {
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	return t, cmd
}

// View renders the box width columns wide with the word count under it.
func (t *TranscriptBox) View(width int) string {
	t.area.SetWidth(max(width, 10))
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d words", t.Words()))
	return t.area.View() + "\n" + count
}

// Value returns the transcript with surrounding whitespace removed.
func (t TranscriptBox) Value() string {
	return strings.TrimSpace(t.area.Value())
}

// Words counts whitespace-separated words typed so far.
func (t TranscriptBox) Words() int {
	return len(strings.Fields(t.area.Value()))
}
