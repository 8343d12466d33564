// Package assessment drives the sectional mental-health flow in the TUI.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/flow"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/results"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

const incompleteStatus = "Please answer every question to continue."

// AssessmentScreen walks the user through the sections of the flow and
// raises the crisis overlay when the flow controller asks for it.
type AssessmentScreen struct {
	env    *screen.Env
	ctrl   *flow.Controller
	crisis catalog.CrisisInfo

	focus int            // question index in the current section
	raw   map[string]int // answers as entered, before inversion

	status string
	errMsg string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.BackInterceptor = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen in env's language.
func New(env *screen.Env) *AssessmentScreen {
	s := &AssessmentScreen{
		env: env,
		raw: make(map[string]int),
	}
	ctrl, err := env.NewFlow()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.ctrl = ctrl
	s.crisis, _ = env.Catalog.Crisis(env.Language)
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Mental Health Check"
}

// InterceptsBack lets Esc close the crisis overlay instead of leaving.
func (s *AssessmentScreen) InterceptsBack() bool {
	return s.ctrl != nil && s.ctrl.InOverlay()
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.ctrl.InOverlay() {
		return []layout.KeyHint{
			{Key: "c", Description: "Continue"},
			{Key: "b", Description: "Back to questions"},
		}
	}
	cur := s.ctrl.Current()
	hints := []layout.KeyHint{}
	if len(cur.Questions) > 0 {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Question"})
		if cur.Kind == catalog.SectionEmergency {
			hints = append(hints, layout.KeyHint{Key: "y/n", Description: "Answer"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "←→ 1-0", Description: "Answer"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	if s.ctrl.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "Bksp", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.ctrl == nil {
		return s, nil
	}
	key := kmsg.String()

	if s.ctrl.InOverlay() {
		switch key {
		case "c":
			s.ctrl.AcknowledgeEmergency()
			s.focus = 0
			s.status = ""
		case "b", "esc":
			s.ctrl.ReturnToAssessment()
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
	case "down", "j", "tab":
		if s.focus < len(s.ctrl.Current().Questions)-1 {
			s.focus++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(+1)
	case "y":
		s.answerBoolean(true)
	case "n":
		s.answerBoolean(false)
	case "backspace":
		if s.ctrl.Previous() {
			s.focus = 0
			s.status = ""
		}
	case "enter":
		return s, s.next()
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			v := int(key[0] - '0')
			if v == 0 {
				v = catalog.ScaleMax
			}
			s.answerScale(v)
		}
	}
	return s, nil
}

func (s *AssessmentScreen) focused() (catalog.Question, bool) {
	qs := s.ctrl.Current().Questions
	if s.focus < 0 || s.focus >= len(qs) {
		return catalog.Question{}, false
	}
	return qs[s.focus], true
}

func (s *AssessmentScreen) set(q catalog.Question, v int) {
	if err := s.ctrl.Answer(q.ID, v); err != nil {
		s.status = err.Error()
		return
	}
	s.raw[q.ID] = v
	s.status = ""
}

// adjust moves the focused scale answer by delta. An unanswered question
// starts at the end of the scale the user moved towards.
func (s *AssessmentScreen) adjust(delta int) {
	q, ok := s.focused()
	if !ok {
		return
	}
	if q.Kind == catalog.KindBoolean {
		s.answerBoolean(delta < 0)
		return
	}
	v, answered := s.raw[q.ID]
	switch {
	case !answered && delta > 0:
		v = catalog.ScaleMin
	case !answered:
		v = catalog.ScaleMax
	default:
		v = min(max(v+delta, catalog.ScaleMin), catalog.ScaleMax)
	}
	s.set(q, v)
}

func (s *AssessmentScreen) answerScale(v int) {
	if q, ok := s.focused(); ok && q.Kind == catalog.KindScale {
		s.set(q, v)
	}
}

func (s *AssessmentScreen) answerBoolean(yes bool) {
	q, ok := s.focused()
	if !ok || q.Kind != catalog.KindBoolean {
		return
	}
	v := 0
	if yes {
		v = 1
	}
	s.set(q, v)
	if s.focus < len(s.ctrl.Current().Questions)-1 {
		s.focus++
	}
}

func (s *AssessmentScreen) next() tea.Cmd {
	if s.ctrl.Current().Kind == catalog.SectionCompletion {
		return s.finish()
	}
	switch s.ctrl.Next() {
	case flow.StepAdvanced:
		s.focus = 0
		s.status = ""
	case flow.StepIncomplete:
		s.status = incompleteStatus
	case flow.StepAtEnd:
		return s.finish()
	}
	return nil
}

func (s *AssessmentScreen) finish() tea.Cmd {
	var crisis *catalog.CrisisInfo
	if s.ctrl.CrisisDetected() {
		info := s.crisis
		crisis = &info
	}

	res, err := s.ctrl.Finish(context.Background())
	if errors.Is(err, flow.ErrNotAtCompletion) {
		s.status = err.Error()
		return nil
	}
	warning := ""
	if err != nil {
		warning = "Results could not be saved: " + err.Error()
	}
	clear(s.raw)
	s.focus = 0

	next := results.NewAssessment(res, crisis, warning)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.ctrl.InOverlay() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.overlayView(width))
	}

	cw := min(width-4, 90)
	cur := s.ctrl.Current()

	var b strings.Builder
	b.WriteString(components.NewStepProgress("Progress", s.ctrl.Index(), s.ctrl.Len(), cw).View())
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(cw).Render(cur.Title))
	b.WriteString("\n")
	if cur.Description != "" {
		b.WriteString(theme.Subtitle.Width(cw).Render(cur.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, q := range cur.Questions {
		b.WriteString(s.questionView(i, q, cw))
		b.WriteString("\n")
	}

	switch cur.Kind {
	case catalog.SectionIntro:
		b.WriteString(theme.Hint.Render("Press Enter to begin."))
	case catalog.SectionCompletion:
		b.WriteString(theme.Hint.Render("Press Enter to see your results."))
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(s.status))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *AssessmentScreen) questionView(i int, q catalog.Question, width int) string {
	focused := i == s.focus
	prefix := "  "
	style := theme.Unselected
	if focused {
		prefix = "▸ "
		style = theme.Selected
	}

	line := style.Width(width).Render(prefix + q.Text)
	v, answered := s.raw[q.ID]

	var answer string
	if q.Kind == catalog.KindBoolean {
		if !answered {
			v = -1
		}
		answer = components.YesNoView(v, focused, "Yes", "No")
	} else {
		answer = components.ScaleView(v, focused)
		if label := s.env.Catalog.ScaleLabel(s.env.Language, v); label != "" {
			answer += "  " + theme.Hint.Render(label)
		}
	}
	return line + "\n    " + answer + "\n"
}

func (s *AssessmentScreen) overlayView(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render(s.crisis.Title))
	b.WriteString("\n\n")
	b.WriteString(s.crisis.Message)
	b.WriteString("\n\n")
	for _, r := range s.crisis.Resources {
		fmt.Fprintf(&b, "  • %s\n    %s\n", lipgloss.NewStyle().Bold(true).Render(r.Label), r.Contact)
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(s.crisis.Continue))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("c", "Continue", true).View(),
		"  ",
		components.NewButton("b", "Back to questions", false).View(),
	))

	return theme.Alert.Width(min(width-4, 80)).Render(b.String())
}
