package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/ui/theme"
)

// eighths are the partial block glyphs, index n filling n/8 of a cell.
var eighths = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Meter is a labelled horizontal gauge for a ratio in [0, 1]. When Pass is
// set the bar turns green at or above it and amber below.
type Meter struct {
	Label string
	Value float64
	Pass  float64
	Width int
}

// View renders label, bar and percentage within Width columns.
func (m Meter) View() string {
	v := min(max(m.Value, 0), 1)
	pct := fmt.Sprintf(" %3.0f%%", v*100)

	label := ""
	if m.Label != "" {
		label = theme.Body.Render(m.Label) + "  "
	}
	cells := max(m.Width-lipgloss.Width(label)-len(pct), 4)

	fill := theme.Secondary
	if m.Pass > 0 {
		fill = theme.Accent
		if v >= m.Pass {
			fill = theme.Success
		}
	}

	eighthsFilled := int(v * float64(cells*8))
	full, part := eighthsFilled/8, eighthsFilled%8
	bar := strings.Repeat("█", full) + eighths[part]
	used := full
	if part > 0 {
		used++
	}

	return label +
		lipgloss.NewStyle().Foreground(fill).Render(bar) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-used)) +
		theme.Muted.Render(pct)
}
