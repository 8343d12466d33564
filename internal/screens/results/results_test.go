package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/scoring"
)

func TestAssessmentView(t *testing.T) {
	s := NewAssessment(scoring.AssessmentResults{Anxiety: 7, Sleep: 3, Overall: 4}, nil, "")
	if s.Title() != "Assessment Results" {
		t.Errorf("Title = %q", s.Title())
	}
	view := s.View(100, 30)
	for _, want := range []string{"Anxiety", "Overall wellbeing: 4/10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAssessmentView_Crisis(t *testing.T) {
	info, err := catalog.Default().Crisis(catalog.English)
	if err != nil {
		t.Fatal(err)
	}
	view := NewAssessment(scoring.AssessmentResults{}, &info, "").View(100, 40)
	if !strings.Contains(view, "741741") {
		t.Error("expected crisis resources in view")
	}
}

func TestSymptomView_AllUnlikely(t *testing.T) {
	cat, err := catalog.Default().Category(catalog.English, "head")
	if err != nil {
		t.Fatal(err)
	}
	res := []scoring.ScoreResult{{Condition: "migraine", Label: "Migraine", Score: 10, Severity: scoring.Unlikely}}
	view := NewSymptom(cat, res, "could not save").View(100, 30)
	for _, want := range []string{"Migraine", "Unlikely", "None of the conditions", "could not save"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := NewSymptom(catalog.Category{}, nil, "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg")
	}
}
