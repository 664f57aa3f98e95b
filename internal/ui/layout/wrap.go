package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display cells, splitting
// only at whitespace. A word wider than width gets a line of its own.
// Runs of whitespace collapse to single spaces.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
	)
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(w)
		lineWidth += ww
	}
	return append(lines, line.String())
}

// TextWidth returns the width prose should wrap at inside a content area.
func TextWidth(width int) int {
	return max(min(width-8, MaxTextWidth), 10)
}
