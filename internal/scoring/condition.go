package scoring

import "github.com/abhisek/triage/internal/catalog"

// Vector holds the answers to a category's questions by position.
type Vector [catalog.QuestionsPerCategory]int

// Fill returns a Vector with every position set to v.
func Fill(v int) Vector {
	var out Vector
	for i := range out {
		out[i] = v
	}
	return out
}

// ScoreResult is the score and label of one condition.
type ScoreResult struct {
	Condition string   `json:"condition"`
	Label     string   `json:"label"`
	Score     int      `json:"score"`
	Severity  Severity `json:"severity"`
}

// ScoreCondition is the rounded weighted sum of the answers at the
// condition's weighted positions. Unweighted positions contribute nothing.
func ScoreCondition(c catalog.Condition, v Vector) int {
	var sum float64
	for _, w := range c.Weights {
		sum += w.Value * float64(v[w.Index])
	}
	return Round(sum)
}

// ScoreConditions scores and classifies each condition, keeping the
// declaration order of conds. No conditions yields an empty slice.
func ScoreConditions(conds []catalog.Condition, v Vector) []ScoreResult {
	out := make([]ScoreResult, 0, len(conds))
	for _, c := range conds {
		score := ScoreCondition(c, v)
		out = append(out, ScoreResult{
			Condition: c.Name,
			Label:     c.Label,
			Score:     score,
			Severity:  Classify(score, c.Thresholds),
		})
	}
	return out
}

// AllUnlikely reports whether there is at least one result and every result
// is Unlikely.
func AllUnlikely(results []ScoreResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.Severity != Unlikely {
			return false
		}
	}
	return true
}
