// Package app hosts the Bubble Tea program behind `lingoz play`.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/screens/home"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/ui/layout"
)

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// Model is the root model. It owns the window size and global keys and
// delegates everything else to the router.
type Model struct {
	router        *router.Router
	svc           *session.Service
	width, height int
}

func newModel(svc *session.Service, bookmarks store.BookmarkRepo) Model {
	return Model{router: router.New(home.New(svc, bookmarks)), svc: svc}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.back()
		}
	}
	return m, m.router.Update(msg)
}

// back lets the active screen handle Esc, or closes it unless it is home.
func (m Model) back() tea.Cmd {
	if bh, ok := m.router.Active().(screen.BackHandler); ok {
		return bh.Back()
	}
	if m.router.Depth() > 1 {
		return router.Back()
	}
	return nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width > 0 && m.height > 0 {
		v.SetContent(m.render())
	}
	return v
}

func (m Model) render() string {
	active := m.router.Active()
	sum := m.svc.Tally().Summary()
	frame := layout.Frame{
		Title: active.Title(),
		Stats: layout.HeaderStats{Level: string(m.svc.Level()), Answered: sum.Answered, Correct: sum.Correct},
		Hints: append(m.hints(active), quitHint),
	}
	return frame.Render(m.width, m.height, m.router.View)
}

func (m Model) hints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "L V R T B", Description: "Jump"},
	}
}

// Run starts the terminal UI and blocks until the learner quits or ctx is
// cancelled.
func Run(ctx context.Context, svc *session.Service, bookmarks store.BookmarkRepo) error {
	if _, err := tea.NewProgram(newModel(svc, bookmarks), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
