package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerEnd    = 300 * time.Millisecond
	totalDur     = 900 * time.Millisecond
)

// Disclaimer is shown on launch and repeated on the home screen.
const Disclaimer = "A self-check, not a diagnosis. In an emergency call your local emergency number."

var notes = []string{
	"Answers stay on this machine.",
	"Scores describe how strongly your answers match, nothing more.",
	"Talk to a doctor or counsellor about anything that worries you.",
}

type tickMsg time.Time

// WelcomeScreen shows the banner and the disclaimer before handing over to
// the home screen. Any key after the reveal continues.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// The disclaimer must have been on screen before it can be dismissed.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width < 40)}

	if w.elapsed >= bannerEnd {
		textWidth := min(max(width-8, 20), 64)
		sections = append(sections, "",
			theme.Warning.Width(textWidth).Align(lipgloss.Center).Render(Disclaimer),
			"")
		for _, n := range notes {
			sections = append(sections, theme.Body.Width(textWidth).Align(lipgloss.Center).Render(n))
		}
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
