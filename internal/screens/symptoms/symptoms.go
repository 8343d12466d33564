// Package symptoms is the category picker and questionnaire of the
// symptom checker.
package symptoms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/results"
	"github.com/abhisek/triage/internal/symptom"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

type phase int

const (
	phasePick phase = iota
	phaseAnswer
)

// SymptomsScreen lets the user filter and pick a body-system category,
// then rate its ten questions.
type SymptomsScreen struct {
	env        *screen.Env
	ctrl       *symptom.Controller
	categories []catalog.Category

	phase    phase
	filter   components.FilterInput
	selected int // index into visible()
	focus    int // question index while answering

	status string
	errMsg string
}

var _ screen.Screen = (*SymptomsScreen)(nil)
var _ screen.KeyHintProvider = (*SymptomsScreen)(nil)
var _ screen.BackInterceptor = (*SymptomsScreen)(nil)

// New creates a SymptomsScreen in env's language.
func New(env *screen.Env) *SymptomsScreen {
	s := &SymptomsScreen{
		env:    env,
		filter: components.NewFilterInput("type to filter categories", 32),
	}
	ctrl, err := env.NewSymptom()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	cats, err := env.Catalog.Categories(env.Language)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.ctrl = ctrl
	s.categories = cats
	return s
}

func (s *SymptomsScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *SymptomsScreen) Title() string {
	if s.phase == phaseAnswer {
		if cat, ok := s.ctrl.Category(); ok {
			return "Symptoms: " + cat.Label
		}
	}
	return "Symptom Checker"
}

// InterceptsBack returns to the category list while answering.
func (s *SymptomsScreen) InterceptsBack() bool {
	return s.phase == phaseAnswer
}

func (s *SymptomsScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseAnswer {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "←→ 1-0", Description: "Rate"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Categories"},
		}
	}
	return []layout.KeyHint{
		{Key: "Type", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the categories matching the filter.
func (s *SymptomsScreen) visible() []catalog.Category {
	var out []catalog.Category
	for _, c := range s.categories {
		if s.filter.Matches(c.Label, c.Key) {
			out = append(out, c)
		}
	}
	return out
}

func (s *SymptomsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.ctrl == nil {
		return s, nil
	}
	if s.phase == phaseAnswer {
		return s, s.updateAnswer(msg)
	}
	return s, s.updatePick(msg)
}

func (s *SymptomsScreen) updatePick(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return nil
		case "down":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
			return nil
		case "enter":
			vis := s.visible()
			if s.selected >= len(vis) {
				return nil
			}
			if err := s.ctrl.SelectCategory(vis[s.selected].Key); err != nil {
				s.status = err.Error()
				return nil
			}
			s.phase = phaseAnswer
			s.focus = 0
			s.status = ""
			return nil
		}
	}

	before := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.filter.Value() != before {
		s.selected = 0
	}
	return cmd
}

func (s *SymptomsScreen) updateAnswer(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	key := kmsg.String()
	switch key {
	case "esc":
		s.phase = phasePick
		s.status = ""
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
	case "down", "j", "tab":
		if s.focus < catalog.QuestionsPerCategory-1 {
			s.focus++
		}
	case "left", "h":
		s.set(s.ctrl.Answers()[s.focus] - 1)
	case "right", "l":
		s.set(s.ctrl.Answers()[s.focus] + 1)
	case "enter":
		return s.compute()
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			v := int(key[0] - '0')
			if v == 0 {
				v = catalog.ScaleMax
			}
			s.set(v)
		}
	}
	return nil
}

func (s *SymptomsScreen) set(v int) {
	v = min(max(v, catalog.ScaleMin), catalog.ScaleMax)
	if err := s.ctrl.SetAnswer(s.focus, v); err != nil {
		s.status = err.Error()
		return
	}
	s.status = ""
}

func (s *SymptomsScreen) compute() tea.Cmd {
	cat, _ := s.ctrl.Category()
	res, err := s.ctrl.Compute(context.Background())
	if errors.Is(err, symptom.ErrNoCategory) {
		s.status = err.Error()
		return nil
	}
	warning := ""
	if err != nil {
		warning = "Results could not be saved: " + err.Error()
	}
	next := results.NewSymptom(cat, res, warning)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SymptomsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var body string
	if s.phase == phaseAnswer {
		body = s.answerView(min(width-4, 90))
	} else {
		body = s.pickView()
	}
	if s.status != "" {
		body += "\n" + theme.Warning.Render(s.status)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *SymptomsScreen) pickView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Where are your symptoms?"))
	b.WriteString("\n\n")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")

	vis := s.visible()
	if len(vis) == 0 {
		b.WriteString(theme.Hint.Render("  No category matches the filter."))
		b.WriteString("\n")
	}
	for i, c := range vis {
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + c.Label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + c.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SymptomsScreen) answerView(width int) string {
	cat, _ := s.ctrl.Category()
	vec := s.ctrl.Answers()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Rate each symptom from 1 (not at all) to 10 (completely)."))
	b.WriteString("\n\n")
	for i, q := range cat.Questions {
		focused := i == s.focus
		prefix, style := "  ", theme.Unselected
		if focused {
			prefix, style = "▸ ", theme.Selected
		}
		fmt.Fprintf(&b, "%s\n    %s", style.Width(width).Render(fmt.Sprintf("%s%2d. %s", prefix, i+1, q.Text)), components.ScaleView(vec[i], focused))
		if focused {
			if label := s.env.Catalog.ScaleLabel(s.env.Language, vec[i]); label != "" {
				b.WriteString("  " + theme.Hint.Render(label))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
