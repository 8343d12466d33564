package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProvider_SeedPasses(t *testing.T) {
	if _, err := NewProvider(SeedDefinition()); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func expectShapeError(t *testing.T, def Definition, want string) {
	t.Helper()
	_, err := NewProvider(def)
	if err == nil {
		t.Fatalf("expected error mentioning %q, got nil", want)
	}
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error should mention %q, got: %v", want, err)
	}
}

func TestValidate_FirstSectionMustBeIntro(t *testing.T) {
	def := SeedDefinition()
	def.Sections = def.Sections[1:]
	expectShapeError(t, def, "first section must be")
}

func TestValidate_LastSectionMustBeCompletion(t *testing.T) {
	def := SeedDefinition()
	def.Sections = def.Sections[:len(def.Sections)-1]
	expectShapeError(t, def, "last section must be")
}

func TestValidate_DuplicateSectionID(t *testing.T) {
	def := SeedDefinition()
	def.Sections[2].ID = def.Sections[1].ID
	expectShapeError(t, def, "duplicate section ID")
}

func TestValidate_EmergencyRequired(t *testing.T) {
	def := SeedDefinition()
	var kept []SectionDef
	for _, s := range def.Sections {
		if s.Kind != SectionEmergency {
			kept = append(kept, s)
		}
	}
	def.Sections = kept
	expectShapeError(t, def, "exactly one")
}

func TestValidate_CrisisQuestionsMustBeBoolean(t *testing.T) {
	def := SeedDefinition()
	for i, s := range def.Sections {
		if s.Kind == SectionEmergency {
			def.Sections[i].Questions[0].Kind = KindScale
		}
	}
	expectShapeError(t, def, "crisis question")
}

func TestValidate_QuestionSectionNeedsQuestions(t *testing.T) {
	def := SeedDefinition()
	def.Sections[1].Questions = nil
	expectShapeError(t, def, "has no questions")
}

func TestValidate_IntroCarriesNoQuestions(t *testing.T) {
	def := SeedDefinition()
	def.Sections[0].Questions = []QuestionDef{scale("anxiety_1")}
	expectShapeError(t, def, "must not have questions")
}

func TestValidate_InvertedBooleanRejected(t *testing.T) {
	def := SeedDefinition()
	for i, s := range def.Sections {
		if s.Kind == SectionEmergency {
			def.Sections[i].Questions[1].Inverted = true
		}
	}
	expectShapeError(t, def, "only scale questions can be inverted")
}

func TestValidate_CategoryArity(t *testing.T) {
	def := SeedDefinition()
	def.Categories[0].Questions = def.Categories[0].Questions[:9]
	expectShapeError(t, def, "exactly 10 questions")
}

func TestValidate_WeightOutsideCategory(t *testing.T) {
	def := SeedDefinition()
	def.Categories[0].Conditions[0].Weights["chest_1"] = 1
	expectShapeError(t, def, `unknown question "chest_1"`)
}

func TestValidate_ConditionNeedsWeights(t *testing.T) {
	def := SeedDefinition()
	def.Categories[0].Conditions[0].Weights = map[string]float64{}
	expectShapeError(t, def, "no weights")
}

func TestValidate_ThresholdOrder(t *testing.T) {
	tests := []struct {
		name string
		th   ThresholdsDef
	}{
		{"negative mild", th(-1, 10, 20)},
		{"mild equals moderate", th(10, 10, 20)},
		{"moderate above severe", th(10, 30, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := SeedDefinition()
			def.Categories[1].Conditions[0].Thresholds = tt.th
			expectShapeError(t, def, "thresholds must satisfy")
		})
	}
}

func TestValidate_DuplicateConditionName(t *testing.T) {
	def := SeedDefinition()
	conds := def.Categories[2].Conditions
	conds[1].Name = conds[0].Name
	expectShapeError(t, def, "duplicate condition")
}

func TestValidate_QuestionIDSharedAcrossOwners(t *testing.T) {
	def := SeedDefinition()
	def.Categories[0].Questions[0].ID = "anxiety_1"
	expectShapeError(t, def, `question ID "anxiety_1" used in both`)
}

func TestValidate_MissingTranslation(t *testing.T) {
	def := SeedDefinition()
	delete(def.Texts[Hindi], "skin_3")
	expectShapeError(t, def, `language "hindi" is missing text for: skin_3`)
}

func TestValidate_BlankTranslation(t *testing.T) {
	def := SeedDefinition()
	def.Texts[English]["scale.7"] = "   "
	expectShapeError(t, def, "scale.7")
}

func TestValidate_NoLanguages(t *testing.T) {
	def := SeedDefinition()
	def.Texts = nil
	expectShapeError(t, def, "no languages defined")
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	def := SeedDefinition()
	def.Sections = def.Sections[1:]
	def.Categories[0].Questions = def.Categories[0].Questions[:9]

	_, err := NewProvider(def)
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if len(se.Problems) < 2 {
		t.Errorf("expected at least 2 problems, got %d: %v", len(se.Problems), se.Problems)
	}
}
