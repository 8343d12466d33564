package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/assessment"
	"github.com/abhisek/triage/internal/screens/history"
	"github.com/abhisek/triage/internal/screens/symptoms"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
)

type latestLoadedMsg struct {
	Record *store.AssessmentRecord
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env        *screen.Env
	menu       components.Menu
	menuLabels []string
	latest     *store.AssessmentRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	menuLabels := []string{"MENTAL HEALTH CHECK", "SYMPTOM CHECKER", "HISTORY", "EXIT"}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return assessment.New(env) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return symptoms.New(env) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen {
			if env.Results == nil {
				return history.New(nil)
			}
			return history.New(env.Results)
		})},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		env:        env,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

// loadLatest refreshes the last-check summary. A load failure just leaves
// the summary empty.
func (h *HomeScreen) loadLatest() tea.Cmd {
	repo := h.env.Results
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		rec, _ := repo.LatestAssessment(context.Background())
		return latestLoadedMsg{Record: rec}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(latestLoadedMsg); ok {
		h.latest = m.Record
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
	}
}

// Refresh reloads the last-check summary after returning to the menu.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadLatest()
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 90
	cw := contentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if h.env.Results != nil {
		sections = append(sections, renderLatest(h.latest, cw))
	}
	sections = append(sections,
		renderMenu(h.menuLabels, h.menu.Selected, cw),
		renderDisclaimer(cw),
	)

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
