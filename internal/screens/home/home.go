package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/screens/bookmarks"
	"github.com/abhisek/lingoz/internal/screens/quiz"
	"github.com/abhisek/lingoz/internal/screens/reading"
	"github.com/abhisek/lingoz/internal/screens/talk"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/ui/components"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	svc  *session.Service
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The bookmarks entry is disabled when repo is nil.
func New(svc *session.Service, repo store.BookmarkRepo) *HomeScreen {
	// Screens are created per visit so each starts fresh.
	pushNew := func(mk func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(mk()) }
	}

	items := []components.MenuItem{
		{Key: "l", Label: "Listening", Hint: "fill the gap in a sentence", Action: pushNew(func() screen.Screen {
			return quiz.New(svc, quiz.ModeListening)
		})},
		{Key: "v", Label: "Vocabulary", Hint: "pick the right translation", Action: pushNew(func() screen.Screen {
			return quiz.New(svc, quiz.ModeVocabulary)
		})},
		{Key: "r", Label: "Reading", Hint: "read a passage aloud", Action: pushNew(func() screen.Screen {
			return reading.New(svc)
		})},
		{Key: "t", Label: "Conversation", Hint: "chat with a teacher", Disabled: !svc.CanConverse(), Action: pushNew(func() screen.Screen {
			return talk.New(svc)
		})},
		{Key: "b", Label: "Bookmarks", Hint: "review saved words", Disabled: repo == nil, Action: pushNew(func() screen.Screen {
			return bookmarks.New(svc, repo)
		})},
		{Key: "q", Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{svc: svc, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title, width, "lingoz"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Subtitle, width, "practice listening, vocabulary, reading and conversation"))
	b.WriteString("\n\n")

	sum := h.svc.Tally().Summary()
	status := fmt.Sprintf("Level %s", h.svc.Level())
	if sum.Answered > 0 {
		status += fmt.Sprintf("   ·   %d answered, %.0f%% correct", sum.Answered, sum.Accuracy*100)
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent), width, status))
	b.WriteString("\n\n")

	menu := theme.Card.Render(strings.TrimRight(h.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
