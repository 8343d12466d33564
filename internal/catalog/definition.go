package catalog

import (
	"fmt"
	"strconv"
)

// Definition is the language-independent shape of a catalog plus its
// per-language text tables. It is the unit loaded from disk or seeded.
type Definition struct {
	Version         string                          `yaml:"version" json:"version"`
	Sections        []SectionDef                    `yaml:"sections" json:"sections"`
	Categories      []CategoryDef                   `yaml:"categories" json:"categories"`
	CrisisResources []string                        `yaml:"crisis_resources" json:"crisis_resources"`
	Texts           map[Language]map[string]string `yaml:"texts" json:"texts"`
}

// SectionDef declares a section and its questions.
type SectionDef struct {
	ID        string        `yaml:"id" json:"id"`
	Kind      SectionKind   `yaml:"kind" json:"kind"`
	Questions []QuestionDef `yaml:"questions,omitempty" json:"questions,omitempty"`
}

// QuestionDef declares a question without its text.
type QuestionDef struct {
	ID       string       `yaml:"id" json:"id"`
	Kind     QuestionKind `yaml:"kind" json:"kind"`
	Inverted bool         `yaml:"inverted,omitempty" json:"inverted,omitempty"`
}

// CategoryDef declares a symptom category and the conditions scored against it.
type CategoryDef struct {
	Key        string         `yaml:"key" json:"key"`
	Questions  []QuestionDef  `yaml:"questions" json:"questions"`
	Conditions []ConditionDef `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

// ConditionDef declares a condition. Weights are keyed by question ID.
type ConditionDef struct {
	Name       string             `yaml:"name" json:"name"`
	Weights    map[string]float64 `yaml:"weights" json:"weights"`
	Thresholds ThresholdsDef      `yaml:"thresholds" json:"thresholds"`
}

// ThresholdsDef mirrors Thresholds for file formats.
type ThresholdsDef struct {
	Mild     int `yaml:"mild" json:"mild"`
	Moderate int `yaml:"moderate" json:"moderate"`
	Severe   int `yaml:"severe" json:"severe"`
}

// Text keys.

func sectionTitleKey(id string) string { return "section." + id + ".title" }
func sectionDescriptionKey(id string) string { return "section." + id + ".description" }
func categoryKey(key string) string { return "category." + key }
func conditionKey(category, name string) string {
	return "condition." + category + "." + name
}
func scaleKey(v int) string { return "scale." + strconv.Itoa(v) }
func crisisLabelKey(id string) string { return "crisis." + id + ".label" }
func crisisContactKey(id string) string { return "crisis." + id + ".contact" }

const (
	crisisTitleKey    = "crisis.title"
	crisisMessageKey  = "crisis.message"
	crisisContinueKey = "crisis.continue"
)

// textKeys returns every text key a language table must define.
func (d *Definition) textKeys() []string {
	var keys []string
	for _, s := range d.Sections {
		keys = append(keys, sectionTitleKey(s.ID), sectionDescriptionKey(s.ID))
		for _, q := range s.Questions {
			keys = append(keys, q.ID)
		}
	}
	for _, c := range d.Categories {
		keys = append(keys, categoryKey(c.Key))
		for _, q := range c.Questions {
			keys = append(keys, q.ID)
		}
		for _, cond := range c.Conditions {
			keys = append(keys, conditionKey(c.Key, cond.Name))
		}
	}
	for v := ScaleMin; v <= ScaleMax; v++ {
		keys = append(keys, scaleKey(v))
	}
	keys = append(keys, crisisTitleKey, crisisMessageKey, crisisContinueKey)
	for _, id := range d.CrisisResources {
		keys = append(keys, crisisLabelKey(id), crisisContactKey(id))
	}
	return keys
}

func (t ThresholdsDef) thresholds() Thresholds {
	return Thresholds{Mild: t.Mild, Moderate: t.Moderate, Severe: t.Severe}
}

func (t ThresholdsDef) String() string {
	return fmt.Sprintf("mild=%d moderate=%d severe=%d", t.Mild, t.Moderate, t.Severe)
}
