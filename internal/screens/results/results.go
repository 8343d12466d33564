// Package results shows the outcome of a finished assessment or symptom run.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/report"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// ResultsScreen renders either assessment domain scores or symptom
// condition scores.
type ResultsScreen struct {
	title string

	assessment *scoring.AssessmentResults
	crisis     *catalog.CrisisInfo

	category catalog.Category
	symptoms []scoring.ScoreResult

	// warning is shown when results could not be saved.
	warning string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewAssessment shows sectional results. crisis is non-nil when either
// crisis indicator was answered yes.
func NewAssessment(res scoring.AssessmentResults, crisis *catalog.CrisisInfo, warning string) *ResultsScreen {
	return &ResultsScreen{
		title:      "Assessment Results",
		assessment: &res,
		crisis:     crisis,
		warning:    warning,
	}
}

// NewSymptom shows the condition scores of one category.
func NewSymptom(cat catalog.Category, results []scoring.ScoreResult, warning string) *ResultsScreen {
	return &ResultsScreen{
		title:    "Symptom Results",
		category: cat,
		symptoms: results,
		warning:  warning,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.title
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var body string
	if s.assessment != nil {
		body = s.assessmentView()
	} else {
		body = s.symptomView()
	}
	if s.warning != "" {
		body += "\n\n" + theme.Warning.Render(s.warning)
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ResultsScreen) assessmentView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Your wellbeing snapshot"))
	b.WriteString("\n\n")

	for _, d := range scoring.Domains {
		score := s.assessment.Domain(d)
		concern := score
		if d == scoring.DomainSleep || d == scoring.DomainSocial {
			concern = catalog.ScaleMax - score
		}
		bar := lipgloss.NewStyle().Foreground(theme.ConcernColor(concern)).Render(report.Bar(score))
		fmt.Fprintf(&b, "%-12s %s  %2d/10\n", report.DomainTitle(d), bar, score)
	}

	overall := s.assessment.Overall
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.ConcernColor(catalog.ScaleMax-overall)).
		Render(fmt.Sprintf("Overall wellbeing: %d/10", overall)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Higher anxiety, depression and stress mean more symptoms. Higher sleep, social and overall mean better wellbeing."))

	if s.crisis != nil {
		b.WriteString("\n\n")
		b.WriteString(crisisBlock(*s.crisis))
	}
	return b.String()
}

func (s *ResultsScreen) symptomView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.category.Label))
	b.WriteString("\n\n")

	if len(s.symptoms) == 0 {
		b.WriteString(theme.Hint.Render("No conditions are registered for this category."))
	}
	for _, r := range s.symptoms {
		name := r.Label
		if name == "" {
			name = r.Condition
		}
		sev := lipgloss.NewStyle().Bold(true).Foreground(theme.SeverityColor(r.Severity)).Render(r.Severity.String())
		fmt.Fprintf(&b, "%-28s %4d  %s\n", name, r.Score, sev)
	}

	if scoring.AllUnlikely(s.symptoms) {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(report.ConsultNotice))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("This is not a diagnosis. See a doctor about any symptom that worries you."))
	return b.String()
}

// crisisBlock renders localized crisis resources.
func crisisBlock(info catalog.CrisisInfo) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render(info.Title))
	b.WriteString("\n")
	b.WriteString(info.Message)
	b.WriteString("\n")
	for _, r := range info.Resources {
		fmt.Fprintf(&b, "  • %s: %s\n", lipgloss.NewStyle().Bold(true).Render(r.Label), r.Contact)
	}
	return b.String()
}
