// Package layout draws the frame around every screen and wraps prose.
package layout

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	// MaxTextWidth caps the width of wrapped prose.
	MaxTextWidth = 72
)

// KeyHint is one key binding in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the session state shown at the right of the header.
type HeaderStats struct {
	Level    string
	Answered int
	Correct  int
}

func (s HeaderStats) String() string {
	if s.Answered == 0 {
		return s.Level
	}
	return fmt.Sprintf("%s  %d/%d correct", s.Level, s.Correct, s.Answered)
}

// Frame is the chrome around the active screen.
type Frame struct {
	Title string
	Stats HeaderStats
	Hints []KeyHint
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var bar = lipgloss.NewStyle().Background(theme.BgCard).Padding(0, 2)

// Render draws header, body and footer filling width x height. body gets
// the size left between header and footer.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(fmt.Sprintf(
			"Terminal too small\n\nlingoz needs at least %d x %d\ncurrently %d x %d",
			MinWidth, MinHeight, width, height)))
	}

	header := f.header(width)
	footer := f.footer(width)
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(rest).MaxHeight(rest).Render(body(width, rest))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// header puts the app name left, the screen title centered and the stats
// right, each in a third of the inner width.
func (f Frame) header(width int) string {
	inner := width - 4
	third := inner / 3
	cols := []string{
		lipgloss.NewStyle().Width(third).Foreground(theme.Primary).Bold(true).Render("lingoz"),
		lipgloss.NewStyle().Width(inner - 2*third).Align(lipgloss.Center).Foreground(theme.Text).Render(f.Title),
		lipgloss.NewStyle().Width(third).Align(lipgloss.Right).Foreground(theme.Accent).Render(f.Stats.String()),
	}
	return bar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

// footer lists as many hints as fit; the rest are dropped from the end.
func (f Frame) footer(width int) string {
	const sep = "   "
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var line string
	for _, h := range f.Hints {
		part := keyStyle.Render(h.Key) + " " + theme.Muted.Render(h.Description)
		next := part
		if line != "" {
			next = line + sep + part
		}
		if lipgloss.Width(next) > width-4 {
			break
		}
		line = next
	}
	return bar.Width(width).Render(line)
}

// Centered renders text centered across width in style.
func Centered(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
