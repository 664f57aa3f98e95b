// Package talk implements conversation practice. The learner writes (or
// pastes a transcript of) what they want to say and a teacher persona
// answers. Any word of the last answer can be bookmarked.
package talk

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/screen"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/store"
	"github.com/abhisek/lingoz/internal/textgen"
	"github.com/abhisek/lingoz/internal/ui/components"
	"github.com/abhisek/lingoz/internal/ui/layout"
	"github.com/abhisek/lingoz/internal/ui/theme"
	"github.com/abhisek/lingoz/internal/vocab"
)

type replyMsg struct {
	Text  string
	Reply string
	Err   error
}

type savedMsg struct {
	Bookmark *store.Bookmark
	Err      error
}

type mode int

const (
	modeTyping mode = iota
	modePicking
)

// TalkScreen is a chat with the teacher persona.
type TalkScreen struct {
	svc     *session.Service
	turns   []textgen.Turn
	input   components.TranscriptBox
	mode    mode
	waiting bool

	// words of the last reply, offered for bookmarking
	words  []string
	cursor int
	saved  map[string]bool
	status string
}

var _ screen.Screen = (*TalkScreen)(nil)
var _ screen.KeyHintProvider = (*TalkScreen)(nil)
var _ screen.BackHandler = (*TalkScreen)(nil)

// New creates a TalkScreen.
func New(svc *session.Service) *TalkScreen {
	return &TalkScreen{
		svc:   svc,
		input: components.NewTranscriptBox("Say something..."),
		saved: make(map[string]bool),
	}
}

func (s *TalkScreen) Init() tea.Cmd {
	return nil
}

func (s *TalkScreen) Title() string {
	return "Conversation"
}

func (s *TalkScreen) KeyHints() []layout.KeyHint {
	if s.mode == modePicking {
		return []layout.KeyHint{
			{Key: "←→", Description: "Word"},
			{Key: "Enter", Description: "Bookmark"},
			{Key: "Esc", Description: "Keep talking"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Send"}}
	if len(s.words) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Pick a word"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Back leaves word picking first, then the screen.
func (s *TalkScreen) Back() tea.Cmd {
	if s.mode == modePicking {
		s.mode = modeTyping
		return nil
	}
	return router.Back()
}

func (s *TalkScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.status = "Could not get a reply: " + msg.Err.Error()
			return s, nil
		}
		s.turns = append(s.turns,
			textgen.Turn{Learner: true, Text: msg.Text},
			textgen.Turn{Text: msg.Reply})
		s.words = vocab.WordsIn(msg.Reply)
		s.cursor = 0
		s.status = ""
		s.input = components.NewTranscriptBox("Say something...")
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.status = "Could not save bookmark: " + msg.Err.Error()
			return s, nil
		}
		s.saved[msg.Bookmark.Word] = true
		s.status = fmt.Sprintf("Bookmarked %q (%s)", msg.Bookmark.Word, msg.Bookmark.Translation)
		return s, nil

	case tea.KeyMsg:
		if s.mode == modePicking {
			return s, s.pick(msg.String())
		}
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "tab":
			if len(s.words) > 0 && !s.waiting {
				s.mode = modePicking
			}
			return s, nil
		}
	}

	if s.waiting {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send asks for a reply to the typed message. The turn is added to the
// history only once the reply arrives.
func (s *TalkScreen) send() tea.Cmd {
	text := s.input.Value()
	if text == "" || s.waiting {
		return nil
	}
	s.waiting = true
	s.status = ""
	svc := s.svc
	history := append([]textgen.Turn(nil), s.turns...)
	return func() tea.Msg {
		reply, err := svc.Reply(context.Background(), history, text)
		return replyMsg{Text: text, Reply: reply, Err: err}
	}
}

func (s *TalkScreen) pick(key string) tea.Cmd {
	n := len(s.words)
	switch key {
	case "left", "h", "shift+tab":
		s.cursor = (s.cursor + n - 1) % n
	case "right", "l", "tab":
		s.cursor = (s.cursor + 1) % n
	case "enter", "b":
		word := s.words[s.cursor]
		if s.saved[word] {
			return nil
		}
		svc := s.svc
		return func() tea.Msg {
			b, err := svc.Bookmark(context.Background(), word)
			return savedMsg{Bookmark: b, Err: err}
		}
	}
	return nil
}

func (s *TalkScreen) View(width, height int) string {
	tw := layout.TextWidth(width)

	var foot strings.Builder
	switch {
	case s.mode == modePicking:
		foot.WriteString(layout.Centered(theme.Muted, width, "Bookmark a word from the last reply"))
		foot.WriteString("\n\n")
		foot.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.wordLine(tw)))
	case s.waiting:
		foot.WriteString(layout.Centered(theme.Muted, width, "Teacher is typing..."))
	default:
		foot.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View(tw)))
	}
	if s.status != "" {
		foot.WriteString("\n\n")
		foot.WriteString(layout.Centered(theme.Hint, width, s.status))
	}
	footer := foot.String()

	lines := s.history(tw)
	if len(lines) == 0 {
		lines = []string{theme.Muted.Render("Start the conversation. Write what you would say out loud.")}
	}
	// Keep the newest lines that fit above the footer.
	room := max(height-lipgloss.Height(footer)-3, 1)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	chat := lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
	return "\n" + chat + "\n\n" + footer
}

// history renders every turn wrapped to width, newest last.
func (s *TalkScreen) history(width int) []string {
	var lines []string
	for i, t := range s.turns {
		if i > 0 && t.Learner {
			lines = append(lines, "")
		}
		label, style := theme.Selected.Render("Teacher"), theme.Body
		if t.Learner {
			label, style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("You"), theme.Muted
		}
		lines = append(lines, label)
		for _, l := range layout.Wrap(t.Text, width-2) {
			lines = append(lines, "  "+style.Render(l))
		}
	}
	return lines
}

// wordLine lays the last reply's words out across lines no wider than
// width, highlighting the cursor and marking saved words.
func (s *TalkScreen) wordLine(width int) string {
	var (
		lines []string
		line  []string
		w     int
	)
	for i, word := range s.words {
		label := word
		if s.saved[word] {
			label += "✓"
		}
		style := theme.Unselected
		if i == s.cursor {
			label = "[" + label + "]"
			style = theme.Selected
		}
		lw := lipgloss.Width(label)
		if w > 0 && w+1+lw > width {
			lines = append(lines, strings.Join(line, " "))
			line, w = nil, 0
		}
		if w > 0 {
			w++
		}
		line = append(line, style.Render(label))
		w += lw
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(lines, "\n")
}
