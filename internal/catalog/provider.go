package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownLanguage is returned when a language has no text table.
var ErrUnknownLanguage = errors.New("unknown language")

// ErrUnknownCategory is returned when a category key is not in the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Provider is an immutable, validated catalog. It is safe for concurrent use.
type Provider struct {
	version    string
	sections   []SectionDef
	categories []CategoryDef
	byKey      map[string]int
	conditions map[string][]Condition
	crisis     []string
	texts      map[Language]map[string]string
	languages  []Language
}

// NewProvider validates def and builds a Provider from it.
// Returns a *ShapeError if def violates any shape invariant.
func NewProvider(def Definition) (*Provider, error) {
	if err := validateDefinition(&def); err != nil {
		return nil, err
	}

	p := &Provider{
		version:    def.Version,
		sections:   slices.Clone(def.Sections),
		categories: slices.Clone(def.Categories),
		byKey:      make(map[string]int, len(def.Categories)),
		conditions: make(map[string][]Condition, len(def.Categories)),
		crisis:     slices.Clone(def.CrisisResources),
		texts:      make(map[Language]map[string]string, len(def.Texts)),
		languages:  sortedLanguages(def.Texts),
	}

	for lang, table := range def.Texts {
		cp := make(map[string]string, len(table))
		for k, v := range table {
			cp[k] = v
		}
		p.texts[lang] = cp
	}

	for i, c := range p.categories {
		p.byKey[c.Key] = i

		conds := make([]Condition, 0, len(c.Conditions))
		for _, cd := range c.Conditions {
			conds = append(conds, resolveCondition(c, cd))
		}
		p.conditions[c.Key] = conds
	}

	return p, nil
}

// resolveCondition maps question-keyed weights onto category positions.
// Weights are ordered by position so that summation order is stable.
func resolveCondition(c CategoryDef, cd ConditionDef) Condition {
	weights := make([]Weight, 0, len(cd.Weights))
	for qid, v := range cd.Weights {
		idx := -1
		for i, q := range c.Questions {
			if q.ID == qid {
				idx = i
				break
			}
		}
		weights = append(weights, Weight{QuestionID: qid, Index: idx, Value: v})
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i].Index < weights[j].Index })

	return Condition{
		Name:       cd.Name,
		Weights:    weights,
		Thresholds: cd.Thresholds.thresholds(),
	}
}

// Version returns the catalog's declared version.
func (p *Provider) Version() string {
	return p.version
}

// Languages returns every language with a text table, sorted.
func (p *Provider) Languages() []Language {
	return slices.Clone(p.languages)
}

// HasLanguage reports whether lang has a text table.
func (p *Provider) HasLanguage(lang Language) bool {
	_, ok := p.texts[lang]
	return ok
}

func (p *Provider) table(lang Language) (map[string]string, error) {
	t, ok := p.texts[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return t, nil
}

// Sections returns the ordered sections of the sectional assessment with
// text for lang.
func (p *Provider) Sections(lang Language) ([]Section, error) {
	t, err := p.table(lang)
	if err != nil {
		return nil, err
	}

	out := make([]Section, 0, len(p.sections))
	for _, sd := range p.sections {
		out = append(out, Section{
			ID:          sd.ID,
			Kind:        sd.Kind,
			Title:       t[sectionTitleKey(sd.ID)],
			Description: t[sectionDescriptionKey(sd.ID)],
			Questions:   localizeQuestions(sd.Questions, t),
		})
	}
	return out, nil
}

// Categories returns every symptom category with text for lang, in
// declaration order.
func (p *Provider) Categories(lang Language) ([]Category, error) {
	t, err := p.table(lang)
	if err != nil {
		return nil, err
	}

	out := make([]Category, 0, len(p.categories))
	for _, cd := range p.categories {
		out = append(out, localizeCategory(cd, t))
	}
	return out, nil
}

// Category returns a single category by key with text for lang.
func (p *Provider) Category(lang Language, key string) (Category, error) {
	t, err := p.table(lang)
	if err != nil {
		return Category{}, err
	}
	i, ok := p.byKey[key]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return localizeCategory(p.categories[i], t), nil
}

// CategoryKeys returns all category keys in declaration order.
func (p *Provider) CategoryKeys() []string {
	keys := make([]string, 0, len(p.categories))
	for _, c := range p.categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// Conditions returns the conditions registered under a category, in
// declaration order, with labels for lang. A category without conditions
// yields an empty slice.
func (p *Provider) Conditions(lang Language, key string) ([]Condition, error) {
	t, err := p.table(lang)
	if err != nil {
		return nil, err
	}
	conds, ok := p.conditions[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}

	out := make([]Condition, len(conds))
	for i, c := range conds {
		c.Weights = slices.Clone(c.Weights)
		c.Label = t[conditionKey(key, c.Name)]
		out[i] = c
	}
	return out, nil
}

// ScaleLabel returns the localized label for a scale value, or "" when v is
// out of range or lang is unknown.
func (p *Provider) ScaleLabel(lang Language, v int) string {
	if v < ScaleMin || v > ScaleMax {
		return ""
	}
	return p.texts[lang][scaleKey(v)]
}

// Crisis returns the localized emergency overlay content.
func (p *Provider) Crisis(lang Language) (CrisisInfo, error) {
	t, err := p.table(lang)
	if err != nil {
		return CrisisInfo{}, err
	}

	info := CrisisInfo{
		Title:    t[crisisTitleKey],
		Message:  t[crisisMessageKey],
		Continue: t[crisisContinueKey],
	}
	for _, id := range p.crisis {
		info.Resources = append(info.Resources, CrisisResource{
			Label:   t[crisisLabelKey(id)],
			Contact: t[crisisContactKey(id)],
		})
	}
	return info, nil
}

func localizeQuestions(defs []QuestionDef, t map[string]string) []Question {
	if len(defs) == 0 {
		return nil
	}
	out := make([]Question, 0, len(defs))
	for _, qd := range defs {
		out = append(out, Question{
			ID:       qd.ID,
			Kind:     qd.Kind,
			Inverted: qd.Inverted,
			Text:     t[qd.ID],
		})
	}
	return out
}

func localizeCategory(cd CategoryDef, t map[string]string) Category {
	return Category{
		Key:       cd.Key,
		Label:     t[categoryKey(cd.Key)],
		Questions: localizeQuestions(cd.Questions, t),
	}
}
