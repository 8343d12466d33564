package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/report"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// Limit is the number of entries the screen loads.
const Limit = 50

// Lister is the read side of the result history.
type Lister interface {
	History(ctx context.Context, limit int) ([]store.HistoryEntry, error)
}

type historyLoadedMsg struct {
	Entries []store.HistoryEntry
	Err     error
}

// HistoryScreen displays past assessments and symptom runs, newest first.
type HistoryScreen struct {
	repo     Lister
	entries  []store.HistoryEntry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. A nil repo means history is disabled.
func New(repo Lister) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	repo := s.repo
	return func() tea.Msg {
		entries, err := repo.History(context.Background(), Limit)
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if s.repo == nil {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  History is turned off in the configuration.")
	}
	if len(s.entries) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take a check to see it here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := prefix + e.Timestamp.Format("Jan 02, 2006 15:04") + "  " + summaryLine(e)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range detailLines(e) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func summaryLine(e store.HistoryEntry) string {
	switch {
	case e.Assessment != nil:
		s := fmt.Sprintf("Mental health check  overall %d/10", e.Assessment.Results.Overall)
		if e.Assessment.CrisisDetected {
			s += "  (crisis flagged)"
		}
		return s
	case e.Symptom != nil:
		return fmt.Sprintf("Symptoms: %s  %s", e.Symptom.Category, report.SymptomSummary(e.Symptom.Results))
	}
	return ""
}

func detailLines(e store.HistoryEntry) []string {
	var out []string
	switch {
	case e.Assessment != nil:
		for _, d := range scoring.Domains {
			out = append(out, fmt.Sprintf("%-12s %s %2d", report.DomainTitle(d), report.Bar(e.Assessment.Results.Domain(d)), e.Assessment.Results.Domain(d)))
		}
	case e.Symptom != nil:
		for _, r := range e.Symptom.Results {
			name := r.Label
			if name == "" {
				name = r.Condition
			}
			out = append(out, fmt.Sprintf("%-28s %4d  %s", name, r.Score, r.Severity))
		}
	}
	return out
}
