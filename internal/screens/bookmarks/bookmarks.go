// Package bookmarks lists saved words and starts bookmark drills.
package bookmarks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/screens/quiz"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
)

type loadedMsg struct {
	Bookmarks []store.Bookmark
	Err       error
}

type deletedMsg struct {
	ID  int64
	Err error
}

// BookmarksScreen shows the bookmark list.
type BookmarksScreen struct {
	svc      *session.Service
	repo     store.BookmarkRepo
	items    []store.Bookmark
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*BookmarksScreen)(nil)
var _ screen.KeyHintProvider = (*BookmarksScreen)(nil)
var _ screen.Resumer = (*BookmarksScreen)(nil)

// New creates a BookmarksScreen.
func New(svc *session.Service, repo store.BookmarkRepo) *BookmarksScreen {
	return &BookmarksScreen{svc: svc, repo: repo}
}

func (s *BookmarksScreen) Init() tea.Cmd {
	return s.load()
}

// Resume reloads the list; the drill may have re-saved translations.
func (s *BookmarksScreen) Resume() tea.Cmd {
	return s.load()
}

func (s *BookmarksScreen) Title() string {
	return "Bookmarks"
}

func (s *BookmarksScreen) KeyHints() []layout.KeyHint {
	if len(s.items) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "P", Description: "Practice"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BookmarksScreen) load() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		items, err := repo.List(context.Background())
		return loadedMsg{Bookmarks: items, Err: err}
	}
}

func (s *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.items = msg.Bookmarks
		s.selected = min(s.selected, max(len(s.items)-1, 0))
		return s, nil

	case deletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *BookmarksScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
	case "d", "delete":
		if len(s.items) == 0 {
			return s, nil
		}
		id, repo := s.items[s.selected].ID, s.repo
		return s, func() tea.Msg {
			return deletedMsg{ID: id, Err: repo.Delete(context.Background(), id)}
		}
	case "p":
		if len(s.items) == 0 {
			return s, nil
		}
		return s, router.Push(quiz.New(s.svc, quiz.ModeBookmarks))
	}
	return s, nil
}

func (s *BookmarksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width, "\n\n\nError: "+s.errMsg)
	}
	if !s.loaded {
		return layout.Centered(theme.Muted, width, "\n\n\nLoading bookmarks...")
	}
	if len(s.items) == 0 {
		return layout.Centered(theme.Muted, width,
			"\n\n\nNo bookmarks yet.\n\nPress B after answering a question to save a word.")
	}

	// Keep the selection visible when the list is taller than the screen.
	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.items))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Muted, width, fmt.Sprintf("%d saved words", len(s.items))))
	b.WriteString("\n\n")

	var rows []string
	for i := start; i < end; i++ {
		bm := s.items[i]
		line := fmt.Sprintf("%-20s %s", bm.Word, bm.Translation)
		if i == s.selected {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	return b.String()
}
