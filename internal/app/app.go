package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/assessment"
	"github.com/abhisek/triage/internal/screens/home"
	"github.com/abhisek/triage/internal/screens/symptoms"
	"github.com/abhisek/triage/internal/screens/welcome"
	"github.com/abhisek/triage/internal/ui/layout"
)

// Start selects the screen shown on launch, above the home menu.
type Start int

const (
	StartHome Start = iota
	StartAssessment
	StartSymptoms
)

// Options holds dependencies for the TUI.
type Options struct {
	Env   *screen.Env
	Start Start
	// Welcome shows the disclaimer splash before the home menu. It only
	// applies when starting at home.
	Welcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	start    screen.Screen
	language string
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen, or the welcome
// splash that leads to it, at the bottom of the stack.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Env)
	var root screen.Screen = homeScreen
	if opts.Welcome && opts.Start == StartHome {
		root = welcome.New(func() screen.Screen { return homeScreen })
	}
	m := AppModel{
		router:   router.New(root),
		language: string(opts.Env.Language),
	}
	switch opts.Start {
	case StartAssessment:
		m.start = assessment.New(opts.Env)
	case StartSymptoms:
		m.start = symptoms.New(opts.Env)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != nil {
		start := m.start
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: start} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PopScreenMsg, router.PopToRootMsg:
		cmd := m.router.Update(msg)
		if r, ok := m.router.Active().(screen.Refresher); ok {
			return m, tea.Batch(cmd, r.Refresh())
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.language, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
