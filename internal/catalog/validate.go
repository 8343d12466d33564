package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ShapeError reports every structural defect found in a catalog definition.
// It is a configuration defect and must stop the catalog from loading.
type ShapeError struct {
	Problems []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateDefinition performs all structural checks on def.
// Returns a *ShapeError describing all problems found, or nil if valid.
func validateDefinition(def *Definition) error {
	var errs []string

	errs = append(errs, validateSections(def.Sections)...)
	errs = append(errs, validateCategories(def.Categories)...)

	// Question IDs share the text namespace, so they must be unique across
	// sections and categories alike.
	owners := make(map[string]string)
	for _, s := range def.Sections {
		for _, q := range s.Questions {
			owners[q.ID] = fmt.Sprintf("section %q", s.ID)
		}
	}
	for _, c := range def.Categories {
		self := fmt.Sprintf("category %q", c.Key)
		for _, q := range c.Questions {
			if owner, ok := owners[q.ID]; ok && owner != self {
				errs = append(errs, fmt.Sprintf("question ID %q used in both %s and %s", q.ID, owner, self))
				continue
			}
			owners[q.ID] = self
		}
	}

	errs = append(errs, validateTexts(def)...)

	if len(errs) > 0 {
		return &ShapeError{Problems: errs}
	}
	return nil
}

func validateSections(sections []SectionDef) []string {
	var errs []string

	if len(sections) == 0 {
		return []string{"no sections defined"}
	}
	if sections[0].Kind != SectionIntro {
		errs = append(errs, fmt.Sprintf("first section must be %q, got %q", SectionIntro, sections[0].Kind))
	}
	if last := sections[len(sections)-1]; last.Kind != SectionCompletion {
		errs = append(errs, fmt.Sprintf("last section must be %q, got %q", SectionCompletion, last.Kind))
	}

	ids := make(map[string]bool, len(sections))
	questionIDs := make(map[string]bool)
	emergencyCount := 0

	for _, s := range sections {
		if s.ID == "" {
			errs = append(errs, "section with empty ID")
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		ids[s.ID] = true

		switch s.Kind {
		case SectionIntro, SectionCompletion:
			if len(s.Questions) > 0 {
				errs = append(errs, fmt.Sprintf("section %q of kind %q must not have questions", s.ID, s.Kind))
			}
		case SectionQuestions, SectionEmergency:
			if len(s.Questions) == 0 {
				errs = append(errs, fmt.Sprintf("section %q has no questions", s.ID))
			}
		default:
			errs = append(errs, fmt.Sprintf("section %q has unknown kind %q", s.ID, s.Kind))
		}

		for _, q := range s.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			questionIDs[q.ID] = true
			errs = append(errs, validateQuestion(fmt.Sprintf("section %q", s.ID), q)...)
		}

		if s.Kind == SectionEmergency {
			emergencyCount++
			errs = append(errs, validateEmergency(s)...)
		}
	}

	if emergencyCount != 1 {
		errs = append(errs, fmt.Sprintf("expected exactly one %q section, found %d", SectionEmergency, emergencyCount))
	}
	return errs
}

func validateEmergency(s SectionDef) []string {
	var errs []string
	for _, id := range []string{CrisisQuestion1, CrisisQuestion2} {
		found := false
		for _, q := range s.Questions {
			if q.ID != id {
				continue
			}
			found = true
			if q.Kind != KindBoolean {
				errs = append(errs, fmt.Sprintf("crisis question %q must be %q, got %q", id, KindBoolean, q.Kind))
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("emergency section %q is missing crisis question %q", s.ID, id))
		}
	}
	return errs
}

func validateQuestion(owner string, q QuestionDef) []string {
	var errs []string
	if q.ID == "" {
		errs = append(errs, fmt.Sprintf("%s has a question with empty ID", owner))
	}
	switch q.Kind {
	case KindScale:
	case KindBoolean:
		if q.Inverted {
			errs = append(errs, fmt.Sprintf("%s question %q: only scale questions can be inverted", owner, q.ID))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s question %q has unknown kind %q", owner, q.ID, q.Kind))
	}
	return errs
}

func validateCategories(categories []CategoryDef) []string {
	var errs []string

	keys := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.Key == "" {
			errs = append(errs, "category with empty key")
		}
		if keys[c.Key] {
			errs = append(errs, fmt.Sprintf("duplicate category key: %q", c.Key))
		}
		keys[c.Key] = true

		if len(c.Questions) != QuestionsPerCategory {
			errs = append(errs, fmt.Sprintf("category %q must have exactly %d questions, got %d", c.Key, QuestionsPerCategory, len(c.Questions)))
		}

		qids := make(map[string]bool, len(c.Questions))
		for _, q := range c.Questions {
			if qids[q.ID] {
				errs = append(errs, fmt.Sprintf("category %q: duplicate question ID %q", c.Key, q.ID))
			}
			qids[q.ID] = true
			if q.Kind != KindScale {
				errs = append(errs, fmt.Sprintf("category %q question %q must be %q, got %q", c.Key, q.ID, KindScale, q.Kind))
			}
		}

		names := make(map[string]bool, len(c.Conditions))
		for _, cond := range c.Conditions {
			prefix := fmt.Sprintf("category %q condition %q", c.Key, cond.Name)
			if cond.Name == "" {
				errs = append(errs, fmt.Sprintf("category %q has a condition with empty name", c.Key))
			}
			if names[cond.Name] {
				errs = append(errs, fmt.Sprintf("category %q: duplicate condition %q", c.Key, cond.Name))
			}
			names[cond.Name] = true

			if len(cond.Weights) == 0 {
				errs = append(errs, fmt.Sprintf("%s: no weights", prefix))
			}
			for _, qid := range sortedWeightIDs(cond.Weights) {
				if !qids[qid] {
					errs = append(errs, fmt.Sprintf("%s: weight references unknown question %q", prefix, qid))
				}
			}

			th := cond.Thresholds
			if th.Mild < 0 || th.Mild >= th.Moderate || th.Moderate >= th.Severe {
				errs = append(errs, fmt.Sprintf("%s: thresholds must satisfy 0 <= mild < moderate < severe, got %s", prefix, th))
			}
		}
	}
	return errs
}

func validateTexts(def *Definition) []string {
	if len(def.Texts) == 0 {
		return []string{"no languages defined"}
	}

	var errs []string
	keys := def.textKeys()
	for _, lang := range sortedLanguages(def.Texts) {
		table := def.Texts[lang]
		var missing []string
		for _, k := range keys {
			if strings.TrimSpace(table[k]) == "" {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Sprintf("language %q is missing text for: %s", lang, strings.Join(missing, ", ")))
		}
	}
	return errs
}

func sortedWeightIDs(weights map[string]float64) []string {
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedLanguages(texts map[Language]map[string]string) []Language {
	langs := make([]Language, 0, len(texts))
	for l := range texts {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}
