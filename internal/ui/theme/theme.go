// Package theme holds the terminal UI palette and shared styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette. Muted teal and sand tones, easy on the eyes while reading.
var (
	Primary   = lipgloss.Color("#2DD4BF")
	Secondary = lipgloss.Color("#38BDF8")
	Accent    = lipgloss.Color("#FBBF24")
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#FB7185")
	Text      = lipgloss.Color("#E7E5E4")
	TextDim   = lipgloss.Color("#A8A29E")
	BgCard    = lipgloss.Color("#1C1917")
	Border    = lipgloss.Color("#44403C")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Body     = fg(Text)
	Muted    = fg(TextDim)
	Hint     = fg(TextDim).Italic(true)

	// Blank marks the gap in a cloze sentence.
	Blank = fg(Accent).Bold(true).Underline(true)

	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
	Correct    = fg(Success).Bold(true)
	Incorrect  = fg(Error).Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)

// Verdict picks Correct or Incorrect.
func Verdict(ok bool) lipgloss.Style {
	if ok {
		return Correct
	}
	return Incorrect
}
