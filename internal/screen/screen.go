// Package screen defines what the router needs from a terminal UI screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/ui/layout"
)

// Screen is one page of the terminal UI. View renders the area between
// the header and the footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler takes over Esc. Without it Esc closes the screen.
type BackHandler interface {
	Back() tea.Cmd
}

// Resumer is told when it becomes active again after the screens above
// it closed.
type Resumer interface {
	Resume() tea.Cmd
}
