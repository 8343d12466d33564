package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestDisclaimerRevealedAfterBanner(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), "not a diagnosis") {
		t.Error("disclaimer should not be visible at start")
	}

	sendTicks(w, 3)
	if w.elapsed != bannerEnd {
		t.Errorf("expected elapsed %v, got %v", bannerEnd, w.elapsed)
	}
	if !strings.Contains(w.View(100, 30), "not a diagnosis") {
		t.Error("disclaimer should be visible after the banner")
	}
}

func TestTicksStopOnceRevealed(t *testing.T) {
	w, _ := newTestWelcome()

	sendTicks(w, 9)
	if cmd := sendTicks(w, 1); cmd != nil {
		t.Error("expected ticking to stop after the reveal")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestKeypressDuringRevealIgnored(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress before the reveal finishes should be ignored")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestKeypressAfterRevealEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 20)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from keypress after the reveal")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 20)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestRenderBannerCompact(t *testing.T) {
	if !strings.Contains(RenderBanner(true), "T · R · I") {
		t.Error("expected compact banner")
	}
}
