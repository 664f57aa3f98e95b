package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lingoz/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	resumes int
	got     []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }
func (s *fakeScreen) Resume() tea.Cmd      { s.resumes++; return nil }

// plainScreen does not implement screen.Resumer.
type plainScreen struct{ name string }

func (s *plainScreen) Init() tea.Cmd                           { return nil }
func (s *plainScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *plainScreen) View(int, int) string                    { return s.name }
func (s *plainScreen) Title() string                           { return s.name }

// navigate runs a navigation command through the router.
func navigate(r *Router, cmd tea.Cmd) {
	r.Update(cmd())
}

func TestRouter_PushAndBack(t *testing.T) {
	home, quiz := &fakeScreen{name: "home"}, &fakeScreen{name: "quiz"}
	r := New(home)

	navigate(r, Push(quiz))
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "quiz", r.View(80, 24))
	assert.Equal(t, 1, quiz.inits)

	navigate(r, Back())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
	assert.Equal(t, 1, home.resumes, "revealed screen must be resumed")
}

func TestRouter_BackAtRootIsNoop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	navigate(r, Back())
	navigate(r, Home())

	assert.Equal(t, 1, r.Depth())
	assert.Zero(t, home.resumes)
}

func TestRouter_Replace(t *testing.T) {
	home, quiz, summary := &fakeScreen{name: "home"}, &fakeScreen{name: "quiz"}, &fakeScreen{name: "summary"}
	r := New(home)
	navigate(r, Push(quiz))

	navigate(r, Replace(summary))
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, summary, r.Active())
	assert.Equal(t, 1, summary.inits)
	assert.Zero(t, home.resumes)

	navigate(r, Back())
	assert.Same(t, home, r.Active())
}

func TestRouter_Home(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	navigate(r, Push(&fakeScreen{name: "bookmarks"}))
	navigate(r, Push(&plainScreen{name: "drill"}))

	navigate(r, Home())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 1, home.resumes)
}

func TestRouter_ForwardsToActive(t *testing.T) {
	home, quiz := &fakeScreen{name: "home"}, &fakeScreen{name: "quiz"}
	r := New(home)
	navigate(r, Push(quiz))

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Len(t, quiz.got, 1)
	assert.Empty(t, home.got)
}

func TestRouter_NoResumeForPlainScreen(t *testing.T) {
	root := &plainScreen{name: "root"}
	r := New(root)
	navigate(r, Push(&fakeScreen{name: "top"}))

	assert.Nil(t, r.Update(Back()()))
	assert.Same(t, root, r.Active())
}
