// Package scoring holds the pure scoring functions of both assessments:
// domain and overall scores for the sectional flow, and weighted condition
// scores with severity labels for the symptom battery.
package scoring

import "strconv"

// Answers is the read side of an answer store. Missing answers read as 0.
type Answers interface {
	Value(id string) int
}

// Domains of the sectional assessment, in report order.
const (
	DomainAnxiety    = "anxiety"
	DomainDepression = "depression"
	DomainStress     = "stress"
	DomainSleep      = "sleep"
	DomainSocial     = "social"
)

// DomainQuestions is the number of questions that make up each domain.
const DomainQuestions = 3

// Domains lists the domain keys in report order.
var Domains = []string{DomainAnxiety, DomainDepression, DomainStress, DomainSleep, DomainSocial}

// DomainQuestionIDs returns the question IDs that feed a domain score.
func DomainQuestionIDs(domain string) []string {
	ids := make([]string, DomainQuestions)
	for i := range ids {
		ids[i] = domain + "_" + strconv.Itoa(i+1)
	}
	return ids
}

// AssessmentResults are the domain and overall scores of one completed
// sectional assessment. Higher domain values mean more of the symptom for
// anxiety, depression and stress; higher Overall always means better
// wellbeing.
type AssessmentResults struct {
	Anxiety    int `json:"anxiety"`
	Depression int `json:"depression"`
	Stress     int `json:"stress"`
	Sleep      int `json:"sleep"`
	Social     int `json:"social"`
	Overall    int `json:"overall"`
}

// Domain returns the score of the named domain, or 0 for an unknown name.
func (r AssessmentResults) Domain(name string) int {
	switch name {
	case DomainAnxiety:
		return r.Anxiety
	case DomainDepression:
		return r.Depression
	case DomainStress:
		return r.Stress
	case DomainSleep:
		return r.Sleep
	case DomainSocial:
		return r.Social
	default:
		return 0
	}
}

// DomainScore is the rounded mean of the answers to ids. Missing answers
// count as 0. No ids yields 0.
func DomainScore(ans Answers, ids ...string) int {
	if len(ids) == 0 {
		return 0
	}
	sum := 0
	for _, id := range ids {
		sum += ans.Value(id)
	}
	return Round(float64(sum) / float64(len(ids)))
}

// OverallScore is the rounded mean of the five domains with anxiety,
// depression and stress inverted first.
func OverallScore(r AssessmentResults) int {
	sum := (11 - r.Anxiety) + (11 - r.Depression) + (11 - r.Stress) + r.Sleep + r.Social
	return Round(float64(sum) / 5)
}

// ComputeAssessmentResults scores every domain and the overall wellness
// score from ans.
func ComputeAssessmentResults(ans Answers) AssessmentResults {
	r := AssessmentResults{
		Anxiety:    DomainScore(ans, DomainQuestionIDs(DomainAnxiety)...),
		Depression: DomainScore(ans, DomainQuestionIDs(DomainDepression)...),
		Stress:     DomainScore(ans, DomainQuestionIDs(DomainStress)...),
		Sleep:      DomainScore(ans, DomainQuestionIDs(DomainSleep)...),
		Social:     DomainScore(ans, DomainQuestionIDs(DomainSocial)...),
	}
	r.Overall = OverallScore(r)
	return r
}
