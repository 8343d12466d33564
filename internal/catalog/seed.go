package catalog

import "strconv"

// SeedVersion is the version of the built-in catalog.
const SeedVersion = "v1.0.0"

// defaultProvider is the package-level built-in catalog, set by init().
var defaultProvider *Provider

func init() {
	p, err := NewProvider(SeedDefinition())
	if err != nil {
		panic("catalog: built-in seed is invalid: " + err.Error())
	}
	defaultProvider = p
}

// Default returns the built-in catalog.
func Default() *Provider {
	return defaultProvider
}

// SeedDefinition returns a fresh copy of the built-in catalog definition.
// Callers may modify the result freely.
func SeedDefinition() Definition {
	texts := map[Language]map[string]string{
		English: cloneTexts(englishTexts),
		Hindi:   cloneTexts(hindiTexts),
	}
	return Definition{
		Version:         SeedVersion,
		Sections:        seedSections(),
		Categories:      seedCategories(),
		CrisisResources: []string{"lifeline", "textline", "emergency", "ambulance"},
		Texts:           texts,
	}
}

func cloneTexts(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func scale(id string) QuestionDef {
	return QuestionDef{ID: id, Kind: KindScale}
}

func invertedScale(id string) QuestionDef {
	return QuestionDef{ID: id, Kind: KindScale, Inverted: true}
}

func boolean(id string) QuestionDef {
	return QuestionDef{ID: id, Kind: KindBoolean}
}

// seedSections defines the mental-health assessment flow.
func seedSections() []SectionDef {
	return []SectionDef{
		{ID: "intro", Kind: SectionIntro},
		{ID: "anxiety", Kind: SectionQuestions, Questions: []QuestionDef{
			scale("anxiety_1"), scale("anxiety_2"), scale("anxiety_3"),
		}},
		{ID: "depression", Kind: SectionQuestions, Questions: []QuestionDef{
			scale("depression_1"), scale("depression_2"), scale("depression_3"),
		}},
		{ID: "stress", Kind: SectionQuestions, Questions: []QuestionDef{
			scale("stress_1"), scale("stress_2"), scale("stress_3"),
		}},
		{ID: "sleep", Kind: SectionQuestions, Questions: []QuestionDef{
			scale("sleep_1"), invertedScale("sleep_2"), scale("sleep_3"),
		}},
		{ID: "social", Kind: SectionQuestions, Questions: []QuestionDef{
			scale("social_1"), invertedScale("social_2"), scale("social_3"),
		}},
		{ID: "emergency", Kind: SectionEmergency, Questions: []QuestionDef{
			boolean(CrisisQuestion1), boolean(CrisisQuestion2),
		}},
		{ID: "completion", Kind: SectionCompletion},
	}
}

func categoryQuestions(key string) []QuestionDef {
	qs := make([]QuestionDef, 0, QuestionsPerCategory)
	for i := 1; i <= QuestionsPerCategory; i++ {
		qs = append(qs, scale(questionID(key, i)))
	}
	return qs
}

func questionID(key string, n int) string {
	return key + "_" + strconv.Itoa(n)
}

func th(mild, moderate, severe int) ThresholdsDef {
	return ThresholdsDef{Mild: mild, Moderate: moderate, Severe: severe}
}

// seedCategories defines the body-system symptom battery. Thresholds are
// data; bands the weights cannot reach are reported by the reachability
// check, not corrected here.
func seedCategories() []CategoryDef {
	return []CategoryDef{
		{
			Key:       "skin",
			Questions: categoryQuestions("skin"),
			Conditions: []ConditionDef{
				{Name: "acne", Weights: map[string]float64{"skin_8": 2, "skin_10": 2, "skin_2": 1, "skin_4": 1}, Thresholds: th(21, 36, 51)},
				{Name: "eczema", Weights: map[string]float64{"skin_1": 2, "skin_3": 2, "skin_2": 1, "skin_6": 1}, Thresholds: th(21, 36, 51)},
				{Name: "psoriasis", Weights: map[string]float64{"skin_7": 2, "skin_3": 1.5, "skin_1": 1, "skin_2": 1}, Thresholds: th(18, 30, 45)},
				{Name: "contact_dermatitis", Weights: map[string]float64{"skin_5": 2, "skin_9": 1.5, "skin_6": 1.5, "skin_1": 1}, Thresholds: th(20, 35, 50)},
			},
		},
		{
			Key:       "chest",
			Questions: categoryQuestions("chest"),
			Conditions: []ConditionDef{
				{Name: "asthma", Weights: map[string]float64{"chest_4": 2, "chest_2": 2, "chest_3": 1, "chest_1": 1}, Thresholds: th(18, 30, 45)},
				{Name: "bronchitis", Weights: map[string]float64{"chest_3": 2, "chest_7": 2, "chest_6": 1, "chest_9": 1}, Thresholds: th(20, 34, 48)},
				{Name: "pneumonia", Weights: map[string]float64{"chest_6": 2, "chest_8": 2, "chest_3": 1.5, "chest_2": 1.5}, Thresholds: th(22, 38, 55)},
				{Name: "heart_strain", Weights: map[string]float64{"chest_1": 2, "chest_5": 2, "chest_10": 1.5, "chest_9": 1.5}, Thresholds: th(22, 38, 55)},
			},
		},
		{
			Key:       "head",
			Questions: categoryQuestions("head"),
			Conditions: []ConditionDef{
				{Name: "migraine", Weights: map[string]float64{"head_2": 2, "head_3": 2, "head_4": 1.5, "head_1": 1.5}, Thresholds: th(22, 38, 55)},
				{Name: "tension_headache", Weights: map[string]float64{"head_8": 2, "head_1": 1.5, "head_10": 1, "head_5": 1}, Thresholds: th(16, 28, 42)},
				{Name: "sinusitis", Weights: map[string]float64{"head_5": 2, "head_6": 2, "head_1": 1}, Thresholds: th(16, 28, 40)},
				{Name: "vertigo", Weights: map[string]float64{"head_7": 2.5, "head_4": 1, "head_9": 1}, Thresholds: th(14, 25, 38)},
			},
		},
		{
			Key:       "stomach",
			Questions: categoryQuestions("stomach"),
			Conditions: []ConditionDef{
				{Name: "gerd", Weights: map[string]float64{"stomach_3": 2, "stomach_10": 2, "stomach_1": 1}, Thresholds: th(16, 28, 40)},
				{Name: "gastroenteritis", Weights: map[string]float64{"stomach_6": 2, "stomach_5": 2, "stomach_4": 1.5, "stomach_1": 1}, Thresholds: th(20, 34, 50)},
				{Name: "ibs", Weights: map[string]float64{"stomach_2": 2, "stomach_7": 1.5, "stomach_6": 1.5, "stomach_1": 1.5}, Thresholds: th(20, 34, 50)},
				{Name: "gallbladder", Weights: map[string]float64{"stomach_9": 2.5, "stomach_1": 1.5, "stomach_4": 1}, Thresholds: th(15, 27, 40)},
			},
		},
	}
}
