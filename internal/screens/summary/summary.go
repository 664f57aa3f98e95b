// Package summary shows how the session went so far.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/ui/components"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
)

// SummaryScreen is a snapshot of the session tally taken when a quiz ends.
type SummaryScreen struct {
	sum session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

func New(sum session.Summary) *SummaryScreen {
	return &SummaryScreen{sum: sum}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Session Summary" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "h":
		return s, router.Home()
	case "esc", "backspace":
		return s, router.Back()
	}
	return s, nil
}

// headline is the verdict shown above the numbers.
func headline(sum session.Summary) string {
	switch {
	case sum.Answered == 0:
		return "See you next time"
	case sum.Accuracy >= 0.9:
		return "Excellent!"
	case sum.Accuracy >= 0.7:
		return "Nice work!"
	default:
		return "Good effort, keep going"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.sum
	lines := []string{
		"",
		layout.Centered(theme.Title, width, headline(sum)),
		"",
		layout.Centered(theme.Muted, width, fmt.Sprintf("Time practised: %d:%02d",
			int(sum.Duration.Minutes()), int(sum.Duration.Seconds())%60)),
		"",
	}
	if sum.Answered == 0 {
		lines = append(lines, layout.Centered(theme.Body, width, "No questions answered this time."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		layout.Centered(theme.Body, width, fmt.Sprintf("Answered: %d   ·   Correct: %d   ·   Accuracy: %.0f%%",
			sum.Answered, sum.Correct, sum.Accuracy*100)),
		"",
		layout.Centered(theme.Muted, width, "By exercise"),
	)

	barWidth := min(width-8, 60)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth))
	lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, rule), "")
	for _, r := range sum.ByKind {
		m := components.Meter{
			Label: fmt.Sprintf("%-10s %2d/%-2d", r.Kind, r.Correct, r.Answered),
			Value: r.Accuracy(),
			Pass:  0.7,
			Width: barWidth,
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, m.View()))
	}
	return strings.Join(lines, "\n")
}
