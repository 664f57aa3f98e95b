package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/router"
	"github.com/abhisek/lingoz/internal/session"
	"github.com/abhisek/lingoz/internal/vocab"
)

type stubGenerator struct{}

func (stubGenerator) GenerateSentence(context.Context, practice.Level) (string, error) {
	return "we meet at the cafe every morning", nil
}

func (stubGenerator) GeneratePassage(_ context.Context, level practice.Level) (practice.Passage, error) {
	return practice.NewPassage("we meet at the cafe every morning", level), nil
}

func (stubGenerator) Translate(_ context.Context, word string) (string, error) {
	return "tr-" + word, nil
}

func testModel(t *testing.T) Model {
	t.Helper()
	svc, err := session.New(session.Deps{
		Generator:  stubGenerator{},
		Translator: stubGenerator{},
		Words:      vocab.NewStaticSource([]string{"tea", "bus", "map", "sun"}, practice.NewRand(3)),
	}, practice.LevelA2, practice.DefaultConfig())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return newModel(svc, nil)
}

func TestView_RendersHome(t *testing.T) {
	updated, _ := testModel(t).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := updated.(Model).render()
	for _, want := range []string{"lingoz", "Home", "Listening", "Level A2"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	updated, _ := testModel(t).Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if out := updated.(Model).render(); !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected size warning, got %q", out)
	}
}

func TestUpdate_EscOnHomeIsNoop(t *testing.T) {
	_, cmd := testModel(t).Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("Esc on the home screen should do nothing")
	}
}

func TestUpdate_EnterPushesListening(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushMsg)
	if !ok {
		t.Fatalf("expected PushMsg")
	}
	if push.Screen.Title() != "Listening" {
		t.Errorf("pushed %q, want Listening", push.Screen.Title())
	}
}

func TestUpdate_HotkeyOpensReading(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	m = updated.(Model)
	m.Update(cmd())
	if got := m.router.Active().Title(); got != "Reading" {
		t.Errorf("active = %q, want Reading", got)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d", m.router.Depth())
	}
}
