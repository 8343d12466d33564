package scoring

import (
	"testing"

	"github.com/abhisek/triage/internal/catalog"
)

func acne() catalog.Condition {
	return catalog.Condition{
		Name:  "acne",
		Label: "Acne",
		Weights: []catalog.Weight{
			{QuestionID: "skin_2", Index: 1, Value: 1},
			{QuestionID: "skin_4", Index: 3, Value: 1},
			{QuestionID: "skin_8", Index: 7, Value: 2},
			{QuestionID: "skin_10", Index: 9, Value: 2},
		},
		Thresholds: catalog.Thresholds{Mild: 21, Moderate: 36, Severe: 51},
	}
}

func TestScoreCondition_AcneExample(t *testing.T) {
	c := acne()
	score := ScoreCondition(c, Fill(5))
	if score != 30 {
		t.Fatalf("score = %d, want 30", score)
	}
	if sev := Classify(score, c.Thresholds); sev != Mild {
		t.Errorf("severity = %s, want Mild", sev)
	}
}

func TestScoreCondition_IgnoresUnweightedPositions(t *testing.T) {
	v := Fill(1)
	v[0], v[2], v[4] = 10, 10, 10
	if got := ScoreCondition(acne(), v); got != 6 {
		t.Errorf("score = %d, want 6", got)
	}
}

func TestScoreCondition_RoundsFractionalWeights(t *testing.T) {
	c := catalog.Condition{Weights: []catalog.Weight{{Index: 0, Value: 1.5}}}
	v := Fill(1)
	v[0] = 3
	if got := ScoreCondition(c, v); got != 5 {
		t.Errorf("score = %d, want 5 (4.5 rounded up)", got)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	th := catalog.Thresholds{Mild: 21, Moderate: 36, Severe: 51}
	tests := []struct {
		score int
		want  Severity
	}{
		{0, Unlikely}, {20, Unlikely}, {21, Mild}, {35, Mild},
		{36, Moderate}, {50, Moderate}, {51, Severe}, {200, Severe},
	}
	for _, tt := range tests {
		if got := Classify(tt.score, th); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestScoreConditions_KeepsDeclarationOrder(t *testing.T) {
	low := catalog.Condition{Name: "low", Weights: []catalog.Weight{{Index: 0, Value: 1}}, Thresholds: catalog.Thresholds{Mild: 5, Moderate: 8, Severe: 10}}
	high := acne()
	results := ScoreConditions([]catalog.Condition{low, high}, Fill(10))

	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Condition != "low" || results[1].Condition != "acne" {
		t.Errorf("order = %s, %s", results[0].Condition, results[1].Condition)
	}
	if results[1].Score != 60 || results[1].Severity != Severe {
		t.Errorf("acne = %+v", results[1])
	}
}

func TestScoreConditions_Empty(t *testing.T) {
	results := ScoreConditions(nil, Fill(5))
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
}

func TestAllUnlikely(t *testing.T) {
	tests := []struct {
		name    string
		results []ScoreResult
		want    bool
	}{
		{"empty", nil, false},
		{"all unlikely", []ScoreResult{{Severity: Unlikely}, {Severity: Unlikely}}, true},
		{"one mild", []ScoreResult{{Severity: Unlikely}, {Severity: Mild}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllUnlikely(tt.results); got != tt.want {
				t.Errorf("AllUnlikely = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range Severities {
		got, err := ParseSeverity(string(s))
		if err != nil || got != s {
			t.Errorf("ParseSeverity(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseSeverity("critical"); err == nil {
		t.Error("expected error for unknown label")
	}
}
