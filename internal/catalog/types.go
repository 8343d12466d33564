package catalog

// Language identifies a text variant of the catalog.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = English

// QuestionsPerCategory is the fixed arity of every symptom category.
// Condition weights are resolved to positions in this range.
const QuestionsPerCategory = 10

// Scale bounds for scale questions.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// Crisis-indicator question IDs inside the emergency section.
const (
	CrisisQuestion1 = "emergency_1"
	CrisisQuestion2 = "emergency_2"
)

// QuestionKind is the answer type of a question.
type QuestionKind string

const (
	KindScale   QuestionKind = "scale"
	KindBoolean QuestionKind = "boolean"
)

// Question is a single prompt. Text is filled in for the requested language.
type Question struct {
	ID   string
	Kind QuestionKind
	// Inverted questions store 11-raw so that a higher stored value always
	// means more of the symptom. Only meaningful for scale questions.
	Inverted bool
	Text     string
}

// SectionKind classifies a step of the sectional assessment.
type SectionKind string

const (
	SectionIntro      SectionKind = "intro"
	SectionQuestions  SectionKind = "questions"
	SectionEmergency  SectionKind = "emergency"
	SectionCompletion SectionKind = "completion"
)

// HasQuestions reports whether sections of this kind carry questions.
func (k SectionKind) HasQuestions() bool {
	return k == SectionQuestions || k == SectionEmergency
}

// Section is one ordered step of the sectional assessment.
type Section struct {
	ID          string
	Kind        SectionKind
	Title       string
	Description string
	Questions   []Question
}

// Category is a body-system grouping of exactly QuestionsPerCategory scale questions.
type Category struct {
	Key       string
	Label     string
	Questions []Question
}

// IndexOf returns the position of questionID in the category, or -1.
func (c Category) IndexOf(questionID string) int {
	for i, q := range c.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// Weight binds one category question to its contribution to a condition score.
// Index is resolved from QuestionID when the provider is built.
type Weight struct {
	QuestionID string
	Index      int
	Value      float64
}

// Thresholds are the minimum scores for each severity label above Unlikely,
// which is implicitly 0.
type Thresholds struct {
	Mild     int
	Moderate int
	Severe   int
}

// Condition is a candidate diagnosis scored against a category's answers.
type Condition struct {
	Name       string
	Label      string
	Weights    []Weight
	Thresholds Thresholds
}

// CrisisResource is a hotline or service surfaced when a crisis is detected.
type CrisisResource struct {
	Label   string
	Contact string
}

// CrisisInfo is the localized content of the emergency overlay.
type CrisisInfo struct {
	Title     string
	Message   string
	Resources []CrisisResource
	Continue  string
}
