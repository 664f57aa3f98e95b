// Package router keeps the stack of screens the terminal UI navigates.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/screen"
)

// Navigation messages, normally produced by the commands below.
type (
	PushMsg    struct{ Screen screen.Screen }
	ReplaceMsg struct{ Screen screen.Screen }
	BackMsg    struct{}
	HomeMsg    struct{}
)

// Push opens s on top of the current screen.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{s} }
}

// Replace swaps the current screen for s, so Esc from s returns to the
// screen below.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{s} }
}

// Back closes the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Home closes every screen above the first.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router is a stack of screens; only the top one receives input.
type Router struct {
	stack []screen.Screen
}

// New creates a Router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case ReplaceMsg:
		r.stack[len(r.stack)-1] = msg.Screen
		return msg.Screen.Init()
	case BackMsg:
		return r.truncate(len(r.stack) - 1)
	case HomeMsg:
		return r.truncate(1)
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// truncate shrinks the stack to n screens, never below the root, and
// resumes the screen that becomes active.
func (r *Router) truncate(n int) tea.Cmd {
	n = max(n, 1)
	if n >= len(r.stack) {
		return nil
	}
	clear(r.stack[n:])
	r.stack = r.stack[:n]
	if rs, ok := r.Active().(screen.Resumer); ok {
		return rs.Resume()
	}
	return nil
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
